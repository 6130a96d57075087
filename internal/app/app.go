package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/quickrun/internal/cli"
	"github.com/agbru/quickrun/internal/config"
	apperrors "github.com/agbru/quickrun/internal/errors"
	"github.com/agbru/quickrun/internal/logging"
	"github.com/agbru/quickrun/internal/metrics"
	"github.com/agbru/quickrun/internal/ui"
)

// Application represents the quickrun application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Recorder
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used by the interactive echo step.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics recorder for the application.
func WithMetrics(m *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates a new Application instance by parsing command-line arguments.
// Configuration errors are reported on errWriter before being returned.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.In == nil {
		app.In = os.Stdin
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "quickrun")
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}

	programName := "quickrun"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			cli.DisplayError(errWriter, err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the demo steps in order, writing program output to out.
// It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(a.Config.Level())
	ui.InitTheme(a.Config.NoColor)

	w := bufio.NewWriter(out)
	err := a.runSteps(ctx, w)
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		err = apperrors.IOError{Op: "flush output", Cause: flushErr}
	}

	if a.Config.Metrics {
		if metricsErr := a.Metrics.WriteText(a.ErrWriter); metricsErr != nil {
			a.Logger.Error("writing metrics failed", metricsErr)
		}
	}

	if err != nil {
		a.Logger.Error("run failed", err)
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
