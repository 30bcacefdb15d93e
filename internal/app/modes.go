package app

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/cli"
	"cpgislands/internal/mcpserver"
	"cpgislands/internal/tui/controller"
	"cpgislands/internal/tui/model"
	"cpgislands/pkg/logging"
)

// logOutput is where CLI and MCP modes write logs.
var logOutput io.Writer = os.Stderr

// RunBanner starts the command-line view, which prints the program banner.
func (a *Application) RunBanner(out io.Writer) error {
	logging.InitForCLI(a.logLevel, logOutput)

	view := cli.NewView(out, true)
	a.Wire(ViewSet{App: view, SeqInput: view, Results: view})
	defer a.Close()

	a.Start()
	return nil
}

// RunAnnotate replays one annotate request through the command-line view.
func (a *Application) RunAnnotate(out io.Writer, opts cli.Options) error {
	logging.InitForCLI(a.logLevel, logOutput)

	view := cli.NewView(out, false)
	a.Wire(ViewSet{App: view, SeqInput: view, Results: view})
	defer a.Close()

	a.Start()
	return view.Annotate(opts)
}

// RunTUI executes the interactive terminal UI mode
func (a *Application) RunTUI(ctx context.Context) error {
	logChan := logging.InitForTUI(a.logLevel)
	defer logging.CloseTUIChannel()

	m := model.InitialModel(model.TUIConfig{
		DebugMode:     a.logLevel == logging.LevelDebug,
		SequenceWidth: a.config.Settings.TUI.SequenceWidth,
	}, logChan)
	a.Wire(ViewSet{App: m.AppView, SeqInput: m.InputView, Results: m.ResultsView})
	defer a.Close()

	a.Start()

	p := controller.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// RunMCP serves the MCP tools on in/out until ctx ends, in closes, or the
// process receives SIGINT or SIGTERM.
func (a *Application) RunMCP(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.InitForCLI(a.logLevel, logOutput)

	view := mcpserver.NewView()
	a.Wire(ViewSet{App: view, SeqInput: view, Results: view})
	defer a.Close()

	a.Start()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("MCP", "Serving MCP tools on stdio")
	if err := mcpserver.New(view).Serve(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("MCP", err, "MCP server stopped")
		return err
	}
	return nil
}
