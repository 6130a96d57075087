// Package config handles parsing and validation of the command-line
// configuration, with environment variable overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/quickrun/internal/errors"
	"github.com/agbru/quickrun/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "QUICKRUN_"

// DefaultLogLevel keeps the default run silent on stderr.
const DefaultLogLevel = "warn"

// AppConfig aggregates the application's configuration parameters.
// The zero-flag defaults reproduce the plain demo run.
type AppConfig struct {
	// N is the Fibonacci index computed by the demo.
	N uint64
	// Interactive runs the name echo step after the demo lines.
	Interactive bool
	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string
	// NoColor disables colored diagnostics.
	NoColor bool
	// Metrics dumps the run metrics to stderr in Prometheus text format.
	Metrics bool
}

// Level returns the parsed zerolog level. It falls back to warn for values
// that did not pass Validate.
func (c AppConfig) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return level
}

// Validate checks the semantic validity of the configuration.
//
// Returns:
//   - error: A ConfigError wrapping a ValidationError, or nil.
func (c AppConfig) Validate() error {
	if c.N > fibonacci.MaxIndex {
		return newValidationError("n", fmt.Sprintf("must be at most %d, F(%d) does not fit in 64 bits", fibonacci.MaxIndex, c.N))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return newValidationError("log-level", fmt.Sprintf("unknown level %q (use trace, debug, info, warn, error, fatal, panic or disabled)", c.LogLevel))
	}
	return nil
}

func newValidationError(field, message string) error {
	cause := apperrors.ValidationError{Field: field, Message: message}
	return apperrors.ConfigError{Message: cause.Error(), Cause: cause}
}

// ParseConfig parses the command-line arguments, applies environment
// overrides for flags that were not set explicitly, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments, without the program name.
//   - errorWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.Uint64Var(&config.N, "n", fibonacci.DefaultIndex, "Fibonacci index to compute.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Prompt for a name and greet it after the demo.")
	fs.BoolVar(&config.Interactive, "i", false, "Shorthand for -interactive.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (debug, info, warn, error, disabled).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored diagnostics.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Write run metrics to stderr in Prometheus text format.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Prints the quick-run demo lines. Options:")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery option can also be set with a %s environment variable (e.g. %sN=20).\n", EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config, err
		}
		return config, apperrors.ConfigError{Message: err.Error(), Cause: err}
	}
	if fs.NArg() > 0 {
		return config, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}
