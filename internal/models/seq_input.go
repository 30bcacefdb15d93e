package models

import (
	"errors"

	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
	"cpgislands/internal/loader"
	"cpgislands/pkg/logging"
)

// SeqInputModel holds the sequence being edited and the island definition
// defaults, and runs the annotation for each submission.
type SeqInputModel struct {
	loader FileLoader

	fileLoaded        *event.Event[string]
	errorRaised       *event.Event[string]
	locationsComputed *event.Event[cpg.Annotation]
	defaultsSet       *event.Event[cpg.IslandDefinition]

	loadedSeq  string
	definition cpg.IslandDefinition
	annotation *cpg.Annotation
}

// NewSeqInputModel creates a SeqInputModel that reads files through l.
func NewSeqInputModel(l FileLoader) *SeqInputModel {
	return &SeqInputModel{
		loader:            l,
		fileLoaded:        event.New[string]("file_loaded"),
		errorRaised:       event.New[string]("error_raised"),
		locationsComputed: event.New[cpg.Annotation]("locations_computed"),
		defaultsSet:       event.New[cpg.IslandDefinition]("island_definition_defaults_set"),
	}
}

func (m *SeqInputModel) FileLoaded() *event.Event[string] { return m.fileLoaded }

func (m *SeqInputModel) ErrorRaised() *event.Event[string] { return m.errorRaised }

func (m *SeqInputModel) LocationsComputed() *event.Event[cpg.Annotation] {
	return m.locationsComputed
}

func (m *SeqInputModel) IslandDefinitionDefaultsSet() *event.Event[cpg.IslandDefinition] {
	return m.defaultsSet
}

// LoadFile reads the sequence at path. On success the raw sequence text is
// stored and file_loaded fires with it; otherwise error_raised fires with
// "Sequence parsing error: <reason>".
func (m *SeqInputModel) LoadFile(path string) {
	seq, err := m.loader.Load(path)
	if err != nil {
		msg := err.Error()
		var perr *loader.ParseError
		if errors.As(err, &perr) {
			msg = perr.Message
		}
		logging.Debug("SeqInputModel", "Loading %s failed: %s", path, msg)
		m.errorRaised.Fire("Sequence parsing error: " + msg)
		return
	}
	m.loadedSeq = seq
	logging.Debug("SeqInputModel", "Loaded %d bases from %s", len(seq), path)
	m.fileLoaded.Fire(seq)
}

// LoadedSequence returns the text of the last successfully loaded file.
func (m *SeqInputModel) LoadedSequence() string {
	return m.loadedSeq
}

// AnnotateCpGIslands annotates seq. A definition the annotator rejects
// fires error_raised with the annotator's message; otherwise the result
// is stored and locations_computed fires.
func (m *SeqInputModel) AnnotateCpGIslands(seq cpg.Sequence, islandSize int, minimumGCRatio float64) {
	locations, err := cpg.Annotate(seq, islandSize, minimumGCRatio)
	if err != nil {
		logging.Debug("SeqInputModel", "Annotation rejected: %v", err)
		m.errorRaised.Fire(err.Error())
		return
	}

	annotation := cpg.Annotation{
		Sequence:   seq,
		Definition: cpg.IslandDefinition{IslandSize: islandSize, MinimumGCRatio: minimumGCRatio},
		Locations:  locations,
	}
	stored := annotation.Clone()
	m.annotation = &stored
	logging.Debug("SeqInputModel", "Found %d islands in %d bases", len(locations), seq.Len())
	m.locationsComputed.Fire(annotation)
}

// LastAnnotation returns the most recent successful annotation.
func (m *SeqInputModel) LastAnnotation() (cpg.Annotation, bool) {
	if m.annotation == nil {
		return cpg.Annotation{}, false
	}
	return m.annotation.Clone(), true
}

// SetIslandDefinitionDefaults stores def and fires
// island_definition_defaults_set.
func (m *SeqInputModel) SetIslandDefinitionDefaults(def cpg.IslandDefinition) {
	m.definition = def
	m.defaultsSet.Fire(def)
}

// IslandDefinitionDefaults returns the stored defaults.
func (m *SeqInputModel) IslandDefinitionDefaults() cpg.IslandDefinition {
	return m.definition
}
