package models

import (
	"fmt"

	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
)

// IndexOutOfRangeError is returned by GetFeature for an index with no
// feature.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Feature index %d out of range (%d features)", e.Index, e.Len)
}

// ResultsModel stores the latest annotation and its source sequence.
type ResultsModel struct {
	locationsComputed *event.Event[cpg.Annotation]
	annotation        cpg.Annotation
}

func NewResultsModel() *ResultsModel {
	return &ResultsModel{
		locationsComputed: event.New[cpg.Annotation]("locations_computed"),
	}
}

func (m *ResultsModel) LocationsComputed() *event.Event[cpg.Annotation] {
	return m.locationsComputed
}

// SetAnnotation replaces the stored annotation and fires
// locations_computed.
func (m *ResultsModel) SetAnnotation(annotation cpg.Annotation) {
	m.annotation = annotation.Clone()
	m.locationsComputed.Fire(annotation)
}

func (m *ResultsModel) GetFeature(index int) (cpg.FeatureLocation, error) {
	if index < 0 || index >= len(m.annotation.Locations) {
		return cpg.FeatureLocation{}, &IndexOutOfRangeError{Index: index, Len: len(m.annotation.Locations)}
	}
	return m.annotation.Locations[index], nil
}

func (m *ResultsModel) GetSeq() cpg.Sequence {
	return m.annotation.Sequence
}

// Locations returns a copy of the stored locations.
func (m *ResultsModel) Locations() []cpg.FeatureLocation {
	out := make([]cpg.FeatureLocation, len(m.annotation.Locations))
	copy(out, m.annotation.Locations)
	return out
}
