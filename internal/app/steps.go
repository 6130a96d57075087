package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/quickrun/internal/cli"
	"github.com/agbru/quickrun/internal/demo"
	"github.com/agbru/quickrun/internal/fibonacci"
	"github.com/agbru/quickrun/internal/logging"
	"github.com/agbru/quickrun/internal/orchestration"
)

// Step names, used as span names, log fields and metric labels.
const (
	StepGreeter   = "greeter"
	StepSummation = "summation"
	StepFibonacci = "fibonacci"
	StepEcho      = "echo"
)

// steps returns the ordered steps for the current configuration.
func (a *Application) steps() []orchestration.Step {
	s := []orchestration.Step{
		{Name: StepGreeter, Run: a.runGreeter},
		{Name: StepSummation, Run: a.runSummation},
		{Name: StepFibonacci, Run: a.runFibonacci},
	}
	if a.Config.Interactive {
		s = append(s, orchestration.Step{Name: StepEcho, Run: a.runEcho})
	}
	return s
}

// runSteps executes the configured steps, stopping at the first failure.
func (a *Application) runSteps(ctx context.Context, out io.Writer) error {
	_, err := orchestration.ExecuteSteps(ctx, a.steps(), out, orchestration.StepObserverFunc(a.onStepComplete))
	return err
}

// onStepComplete feeds step results into metrics and the debug log.
func (a *Application) onStepComplete(r orchestration.StepResult) {
	a.Metrics.ObserveStep(r.Name, r.Duration, r.Err)
	if r.Err == nil {
		a.Logger.Debug("step finished", logging.String("step", r.Name), logging.Duration("elapsed", r.Duration))
	}
}

func (a *Application) runGreeter(_ context.Context, out io.Writer) error {
	return demo.Greet(out)
}

func (a *Application) runSummation(ctx context.Context, out io.Writer) error {
	seq := demo.DefaultSequence()
	sum := demo.Sum(seq)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("summation.length", len(seq)),
		attribute.Int("summation.sum", sum),
	)
	return cli.DisplaySum(out, seq, sum)
}

func (a *Application) runFibonacci(ctx context.Context, out io.Writer) error {
	n := a.Config.N
	if n > fibonacci.SlowIndex {
		a.Logger.Warn("naive recursion will be slow", logging.Uint64("n", n))
	}

	value := cli.ComputeFibonacci(n, fibonacci.Naive)
	a.Metrics.RecordFibonacci(n)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("fibonacci.n", int64(n)))

	return cli.DisplayFibonacci(out, n, value)
}

// runEcho needs out to be the buffered writer so the prompt gets flushed.
func (a *Application) runEcho(_ context.Context, out io.Writer) error {
	return demo.EchoName(a.In, out)
}
