//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/quickrun/internal/fibonacci"
)

// SpinnerRefreshRate defines the animation interval of the spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples ComputeFibonacci from a specific spinner implementation,
// which keeps the naive computation testable without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner builds the spinner shown on stderr. The library only animates
// when its writer file is a terminal, so piped or redirected runs stay silent.
var newSpinner = func(options ...spinner.Option) Spinner {
	opts := append([]spinner.Option{spinner.WithWriterFile(os.Stderr)}, options...)
	return &realSpinner{spinner.New(spinner.CharSets[11], SpinnerRefreshRate, opts...)}
}

// ComputeFibonacci runs compute(n), showing a spinner while it works when n
// is large enough for the naive recursion to take noticeable time.
//
// Parameters:
//   - n: The Fibonacci index.
//   - compute: The function computing F(n), usually fibonacci.Naive.
//
// Returns:
//   - uint64: The value returned by compute.
func ComputeFibonacci(n uint64, compute func(uint64) uint64) uint64 {
	if n < fibonacci.SpinnerIndex {
		return compute(n)
	}

	s := newSpinner()
	s.UpdateSuffix(fmt.Sprintf(" Computing Fibonacci(%d)...", n))
	s.Start()
	defer s.Stop()

	return compute(n)
}
