package presenters

import (
	"cpgislands/internal/cpg"
	"cpgislands/internal/event"
	"cpgislands/internal/models"
	"cpgislands/pkg/logging"
)

// ResultsPresenter shows the latest annotation and answers feature
// selection and highlight requests from the view.
type ResultsPresenter struct {
	model models.Results
	view  ResultsView
	subs  event.Group
}

func NewResultsPresenter(model models.Results, view ResultsView) *ResultsPresenter {
	return &ResultsPresenter{model: model, view: view}
}

// RegisterForEvents performs the one-time wiring between model and view.
func (p *ResultsPresenter) RegisterForEvents() {
	p.subs.Add(
		p.model.LocationsComputed().Subscribe(p.locationsComputed),
		p.view.FeatureSelected().Subscribe(p.featureSelected),
		p.view.GlobalHighlight().Subscribe(func(struct{}) { p.globalHighlight() }),
	)
}

// Close removes every subscription made by RegisterForEvents.
func (p *ResultsPresenter) Close() {
	p.subs.Close()
}

func (p *ResultsPresenter) locationsComputed(annotation cpg.Annotation) {
	p.view.SetSeq(annotation.Sequence.String())
	p.view.SetLocations(annotation.Pairs())
}

func (p *ResultsPresenter) featureSelected(index int) {
	loc, err := p.model.GetFeature(index)
	if err != nil {
		logging.Debug("ResultsPresenter", "Feature %d not available: %v", index, err)
		p.view.ShowError(err.Error())
		return
	}
	p.view.ShowFeature(index, loc.Start, loc.End, p.model.GetSeq().Slice(loc))
}

func (p *ResultsPresenter) globalHighlight() {
	locations := p.model.Locations()
	pairs := make([][2]int, 0, len(locations))
	for _, l := range locations {
		pairs = append(pairs, l.Pair())
	}
	p.view.HighlightLocations(pairs)
}
