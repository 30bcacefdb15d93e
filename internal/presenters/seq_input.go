package presenters

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
	"cpgislands/internal/models"
	"cpgislands/pkg/logging"
)

// SeqInputPresenter converts submitted form text into domain values and
// reports every failure to the view as a single message.
type SeqInputPresenter struct {
	model models.SeqInput
	view  SeqInputView
	subs  event.Group

	state   State
	cycleID string
	outcome Outcome
}

func NewSeqInputPresenter(model models.SeqInput, view SeqInputView) *SeqInputPresenter {
	return &SeqInputPresenter{model: model, view: view}
}

// RegisterForEvents performs the one-time wiring between model and view.
func (p *SeqInputPresenter) RegisterForEvents() {
	p.subs.Add(
		p.model.FileLoaded().Subscribe(p.view.SetSeq),
		p.model.ErrorRaised().Subscribe(p.modelError),
		p.model.LocationsComputed().Subscribe(p.locationsComputed),
		p.model.IslandDefinitionDefaultsSet().Subscribe(p.defaultsSet),
		p.view.Submitted().Subscribe(p.userSubmits),
	)
}

// Close removes every subscription made by RegisterForEvents.
func (p *SeqInputPresenter) Close() {
	p.subs.Close()
}

// State returns the current cycle state. Outside a submission it is
// always StateIdle.
func (p *SeqInputPresenter) State() State {
	return p.state
}

// LastOutcome reports how the most recent submission ended.
func (p *SeqInputPresenter) LastOutcome() Outcome {
	return p.outcome
}

func (p *SeqInputPresenter) userSubmits(sub Submission) {
	p.cycleID = uuid.NewString()
	p.transition(StateValidating)

	// Sequence first, then island size, then ratio.
	seq, err := cpg.NewSequence(sub.Sequence)
	if err != nil {
		p.fail(err.Error())
		return
	}
	islandSize, err := strconv.Atoi(strings.TrimSpace(sub.IslandSize))
	if err != nil {
		p.fail((&FormatConversionError{Target: targetIslandSize, Value: sub.IslandSize, Err: err}).Error())
		return
	}
	ratio, err := parseRatio(sub.MinimumGCRatio)
	if err != nil {
		p.fail((&FormatConversionError{Target: targetGCRatio, Value: sub.MinimumGCRatio, Err: err}).Error())
		return
	}

	p.transition(StateAnnotating)
	p.model.AnnotateCpGIslands(seq, islandSize, ratio)

	// The model answers synchronously through locations_computed or
	// error_raised, both of which end the cycle.
	if p.state == StateAnnotating {
		logging.Warn("SeqInputPresenter", "cycle %s: model returned without a result", p.cycleID)
	}
	p.transition(StateIdle)
}

func (p *SeqInputPresenter) locationsComputed(annotation cpg.Annotation) {
	if p.state == StateAnnotating {
		p.transition(StateLocationsComputed)
		p.outcome = Outcome{CycleID: p.cycleID, State: StateLocationsComputed, Locations: len(annotation.Locations)}
	}
}

// modelError shows errors raised by the model, whether they end a
// submission or come from a file load.
func (p *SeqInputPresenter) modelError(message string) {
	if p.state == StateAnnotating {
		p.transition(StateError)
		p.outcome = Outcome{CycleID: p.cycleID, State: StateError, Message: message}
	}
	p.view.ShowError(message)
}

func (p *SeqInputPresenter) fail(message string) {
	p.transition(StateError)
	p.outcome = Outcome{CycleID: p.cycleID, State: StateError, Message: message}
	p.view.ShowError(message)
	p.transition(StateIdle)
}

func (p *SeqInputPresenter) defaultsSet(def cpg.IslandDefinition) {
	p.view.SetIslandDefinitionDefaults(
		strconv.Itoa(def.IslandSize),
		strconv.FormatFloat(def.MinimumGCRatio, 'g', -1, 64),
	)
}

func (p *SeqInputPresenter) transition(to State) {
	if p.state == to {
		return
	}
	logging.Debug("SeqInputPresenter", "cycle %s: %s -> %s", p.cycleID, p.state, to)
	p.state = to
}

// parseRatio reads a decimal number. Hexadecimal floats, which ParseFloat
// also accepts, are rejected.
func parseRatio(text string) (float64, error) {
	s := strings.TrimSpace(text)
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}
