package app

import (
	"fmt"

	"cpgislands/internal/config"
	"cpgislands/internal/loader"
	"cpgislands/internal/models"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// loadConfig is replaced in tests.
var loadConfig = config.LoadConfig

// ViewSet is the group of views one front end provides. A single type may
// fill all three roles.
type ViewSet struct {
	App      presenters.ApplicationView
	SeqInput presenters.SeqInputView
	Results  presenters.ResultsView
}

type closer interface {
	Close()
}

// Application is the composition root: it owns the models and the
// presenters wired against one view set.
type Application struct {
	config   *Config
	logLevel logging.LogLevel

	app        *models.ApplicationModel
	seqInput   *models.SeqInputModel
	results    *models.ResultsModel
	presenters []closer
}

// NewApplication loads the layered configuration and builds the models.
// Views are attached later with Wire.
func NewApplication(cfg *Config) (*Application, error) {
	settings, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Settings = &settings

	level, err := resolveLogLevel(cfg.LogLevel, settings)
	if err != nil {
		return nil, err
	}

	seqInput := models.NewSeqInputModel(loader.New())
	results := models.NewResultsModel()

	return &Application{
		config:   cfg,
		logLevel: level,
		app:      models.NewApplicationModel(seqInput, results, settings.Definition()),
		seqInput: seqInput,
		results:  results,
	}, nil
}

// resolveLogLevel picks the flag value over the configured one.
func resolveLogLevel(flag string, settings config.Config) (logging.LogLevel, error) {
	if flag != "" {
		level, err := logging.ParseLevel(flag)
		if err != nil {
			return level, fmt.Errorf("invalid --log-level: %w", err)
		}
		return level, nil
	}
	if settings.Logging.Level != "" {
		return logging.ParseLevel(settings.Logging.Level)
	}
	return logging.ParseLevel(config.DefaultLogLevel)
}

// LogLevel returns the effective log level.
func (a *Application) LogLevel() logging.LogLevel {
	return a.logLevel
}

// Wire creates the three presenters against views and registers them.
func (a *Application) Wire(views ViewSet) {
	appPresenter := presenters.NewApplicationPresenter(a.app, views.App)
	seqPresenter := presenters.NewSeqInputPresenter(a.seqInput, views.SeqInput)
	resultsPresenter := presenters.NewResultsPresenter(a.results, views.Results)

	appPresenter.RegisterForEvents()
	seqPresenter.RegisterForEvents()
	resultsPresenter.RegisterForEvents()

	a.presenters = append(a.presenters, appPresenter, seqPresenter, resultsPresenter)
	logging.Debug("Bootstrap", "Wired presenters")
}

// Start runs the application model, which starts the views.
func (a *Application) Start() {
	a.app.Run(a.config.Args)
}

// Close unregisters every presenter and the model links.
func (a *Application) Close() {
	for _, p := range a.presenters {
		p.Close()
	}
	a.presenters = nil
	a.app.Close()
}
