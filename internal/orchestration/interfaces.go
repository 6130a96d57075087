package orchestration

import (
	"context"
	"io"
	"time"
)

// Step is one unit of a run. Run writes its program output to out.
type Step struct {
	// Name identifies the step in spans, logs and metrics.
	Name string
	// Run performs the step.
	Run func(ctx context.Context, out io.Writer) error
}

// StepResult encapsulates the outcome of a single step.
type StepResult struct {
	// Name is the name of the step.
	Name string
	// Duration is the wall-clock time the step took.
	Duration time.Duration
	// Err contains any error returned by the step.
	Err error
}

// StepObserver receives the result of every executed step.
// This decouples the executor from metrics and logging concerns.
type StepObserver interface {
	OnStepComplete(result StepResult)
}

// StepObserverFunc is a function adapter that implements StepObserver.
type StepObserverFunc func(result StepResult)

// OnStepComplete calls the underlying function.
func (f StepObserverFunc) OnStepComplete(result StepResult) { f(result) }

// NullStepObserver is a no-op implementation of StepObserver.
type NullStepObserver struct{}

// OnStepComplete discards the result.
func (NullStepObserver) OnStepComplete(StepResult) {}
