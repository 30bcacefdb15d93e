package presenters

import (
	"cpgislands/internal/event"
	"cpgislands/internal/models"
	"cpgislands/pkg/logging"
)

// ApplicationPresenter starts the view when the application starts and
// passes file load requests to the model.
type ApplicationPresenter struct {
	model models.Application
	view  ApplicationView
	subs  event.Group
}

func NewApplicationPresenter(model models.Application, view ApplicationView) *ApplicationPresenter {
	return &ApplicationPresenter{model: model, view: view}
}

// RegisterForEvents performs the one-time wiring between model and view.
func (p *ApplicationPresenter) RegisterForEvents() {
	p.subs.Add(
		p.model.Started().Subscribe(func(struct{}) { p.view.Start() }),
		p.view.FileLoadRequested().Subscribe(p.fileLoadRequested),
	)
}

func (p *ApplicationPresenter) fileLoadRequested(path string) {
	logging.Debug("ApplicationPresenter", "File load requested: %s", path)
	p.model.LoadFile(path)
}

// Close removes every subscription made by RegisterForEvents.
func (p *ApplicationPresenter) Close() {
	p.subs.Close()
}
