package presenters

import (
	"fmt"

	"github.com/stretchr/testify/mock"

	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
)

// mockApplicationModel is a testify mock whose events are real, so tests
// can fire them as the model would.
type mockApplicationModel struct {
	mock.Mock
	started *event.Signal
}

func newMockApplicationModel() *mockApplicationModel {
	return &mockApplicationModel{started: event.NewSignal("started")}
}

func (m *mockApplicationModel) Started() *event.Signal { return m.started }
func (m *mockApplicationModel) Run(args []string)      { m.Called(args) }
func (m *mockApplicationModel) LoadFile(path string)   { m.Called(path) }

type mockSeqInputModel struct {
	mock.Mock
	fileLoaded        *event.Event[string]
	errorRaised       *event.Event[string]
	locationsComputed *event.Event[cpg.Annotation]
	defaultsSet       *event.Event[cpg.IslandDefinition]
}

func newMockSeqInputModel() *mockSeqInputModel {
	return &mockSeqInputModel{
		fileLoaded:        event.New[string]("file_loaded"),
		errorRaised:       event.New[string]("error_raised"),
		locationsComputed: event.New[cpg.Annotation]("locations_computed"),
		defaultsSet:       event.New[cpg.IslandDefinition]("island_definition_defaults_set"),
	}
}

func (m *mockSeqInputModel) FileLoaded() *event.Event[string]  { return m.fileLoaded }
func (m *mockSeqInputModel) ErrorRaised() *event.Event[string] { return m.errorRaised }
func (m *mockSeqInputModel) LocationsComputed() *event.Event[cpg.Annotation] {
	return m.locationsComputed
}
func (m *mockSeqInputModel) IslandDefinitionDefaultsSet() *event.Event[cpg.IslandDefinition] {
	return m.defaultsSet
}
func (m *mockSeqInputModel) LoadFile(path string) { m.Called(path) }
func (m *mockSeqInputModel) AnnotateCpGIslands(seq cpg.Sequence, islandSize int, minimumGCRatio float64) {
	m.Called(seq, islandSize, minimumGCRatio)
}
func (m *mockSeqInputModel) SetIslandDefinitionDefaults(def cpg.IslandDefinition) { m.Called(def) }

type mockResultsModel struct {
	mock.Mock
	locationsComputed *event.Event[cpg.Annotation]
}

func newMockResultsModel() *mockResultsModel {
	return &mockResultsModel{locationsComputed: event.New[cpg.Annotation]("locations_computed")}
}

func (m *mockResultsModel) LocationsComputed() *event.Event[cpg.Annotation] {
	return m.locationsComputed
}
func (m *mockResultsModel) SetAnnotation(a cpg.Annotation) { m.Called(a) }
func (m *mockResultsModel) GetFeature(index int) (cpg.FeatureLocation, error) {
	args := m.Called(index)
	return args.Get(0).(cpg.FeatureLocation), args.Error(1)
}
func (m *mockResultsModel) GetSeq() cpg.Sequence {
	return m.Called().Get(0).(cpg.Sequence)
}
func (m *mockResultsModel) Locations() []cpg.FeatureLocation {
	return m.Called().Get(0).([]cpg.FeatureLocation)
}

// fakeView records every render call as a readable string, in order.
type fakeView struct {
	calls []string

	fileLoadRequested *event.Event[string]
	submitted         *event.Event[Submission]
	featureSelected   *event.Event[int]
	globalHighlight   *event.Signal
}

func newFakeView() *fakeView {
	return &fakeView{
		fileLoadRequested: event.New[string]("file_load_requested"),
		submitted:         event.New[Submission]("submitted"),
		featureSelected:   event.New[int]("feature_selected"),
		globalHighlight:   event.NewSignal("global_highlight"),
	}
}

func (v *fakeView) record(format string, args ...interface{}) {
	v.calls = append(v.calls, fmt.Sprintf(format, args...))
}

func (v *fakeView) FileLoadRequested() *event.Event[string]  { return v.fileLoadRequested }
func (v *fakeView) Submitted() *event.Event[Submission]      { return v.submitted }
func (v *fakeView) FeatureSelected() *event.Event[int]       { return v.featureSelected }
func (v *fakeView) GlobalHighlight() *event.Signal           { return v.globalHighlight }
func (v *fakeView) Start()                                   { v.record("start") }
func (v *fakeView) SetSeq(text string)                       { v.record("set_seq(%s)", text) }
func (v *fakeView) ShowError(message string)                 { v.record("show_error(%s)", message) }
func (v *fakeView) SetLocations(pairs [][2]int)              { v.record("set_locations(%v)", pairs) }
func (v *fakeView) HighlightLocations(pairs [][2]int)        { v.record("highlight_locations(%v)", pairs) }
func (v *fakeView) ShowFeature(index, start, end int, bases string) {
	v.record("show_feature(%d, %d, %d, %s)", index, start, end, bases)
}
func (v *fakeView) SetIslandDefinitionDefaults(islandSize, minimumGCRatio string) {
	v.record("set_island_definition_defaults(%s, %s)", islandSize, minimumGCRatio)
}

var (
	_ ApplicationView = (*fakeView)(nil)
	_ SeqInputView    = (*fakeView)(nil)
	_ ResultsView     = (*fakeView)(nil)
)
