package models

import (
	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
	"cpgislands/pkg/logging"
)

// ApplicationModel owns the sequence input and results models and links
// them: every annotation computed by the input model becomes the results
// model's content.
type ApplicationModel struct {
	started *event.Signal

	seqInput *SeqInputModel
	results  *ResultsModel
	defaults cpg.IslandDefinition
	args     []string

	link *event.Subscription
}

// NewApplicationModel wires seqInput to results. defaults are pushed into
// seqInput by Run.
func NewApplicationModel(seqInput *SeqInputModel, results *ResultsModel, defaults cpg.IslandDefinition) *ApplicationModel {
	m := &ApplicationModel{
		started:  event.NewSignal("started"),
		seqInput: seqInput,
		results:  results,
		defaults: defaults,
	}
	m.link = seqInput.LocationsComputed().Subscribe(results.SetAnnotation)
	return m
}

func (m *ApplicationModel) Started() *event.Signal { return m.started }

func (m *ApplicationModel) SeqInput() *SeqInputModel { return m.seqInput }

func (m *ApplicationModel) Results() *ResultsModel { return m.results }

// Args returns the arguments passed to Run.
func (m *ApplicationModel) Args() []string { return m.args }

// Run fires started and then pushes the island definition defaults.
// Flag parsing has already been done by the command layer.
func (m *ApplicationModel) Run(args []string) {
	m.args = args
	logging.Debug("ApplicationModel", "Starting with args %v", args)
	event.Emit(m.started)
	m.seqInput.SetIslandDefinitionDefaults(m.defaults)
}

// LoadFile loads a sequence file into the input model.
func (m *ApplicationModel) LoadFile(path string) {
	m.seqInput.LoadFile(path)
}

// Close detaches the input model from the results model.
func (m *ApplicationModel) Close() {
	m.link.Unsubscribe()
}
