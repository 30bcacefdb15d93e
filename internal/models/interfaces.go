package models

import (
	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
)

// FileLoader reads the single sequence stored in a file.
type FileLoader interface {
	Load(path string) (string, error)
}

// FileLoaderFunc adapts a function to FileLoader.
type FileLoaderFunc func(path string) (string, error)

func (f FileLoaderFunc) Load(path string) (string, error) {
	return f(path)
}

// Application is the model driven by the ApplicationPresenter.
type Application interface {
	Started() *event.Signal
	Run(args []string)
	LoadFile(path string)
}

// SeqInput is the model driven by the SeqInputPresenter.
type SeqInput interface {
	FileLoaded() *event.Event[string]
	ErrorRaised() *event.Event[string]
	LocationsComputed() *event.Event[cpg.Annotation]
	IslandDefinitionDefaultsSet() *event.Event[cpg.IslandDefinition]

	LoadFile(path string)
	AnnotateCpGIslands(seq cpg.Sequence, islandSize int, minimumGCRatio float64)
	SetIslandDefinitionDefaults(def cpg.IslandDefinition)
}

// Results is the model driven by the ResultsPresenter.
type Results interface {
	LocationsComputed() *event.Event[cpg.Annotation]

	SetAnnotation(annotation cpg.Annotation)
	GetFeature(index int) (cpg.FeatureLocation, error)
	GetSeq() cpg.Sequence
	Locations() []cpg.FeatureLocation
}
