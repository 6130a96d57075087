package orchestration

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// TracerName is the instrumentation scope used for step spans.
const TracerName = "github.com/agbru/quickrun/internal/orchestration"

// SpanPrefix is prepended to the step name to form the span name.
const SpanPrefix = "quickrun."

// ExecuteSteps runs steps sequentially, each inside its own span, and stops
// at the first failing step.
//
// Parameters:
//   - ctx: The parent context; each step receives a child carrying its span.
//   - steps: The steps to run, in order.
//   - out: The writer passed to every step.
//   - observer: Notified after each executed step, including the failing one.
//
// Returns:
//   - []StepResult: The results of the executed steps, in order.
//   - error: The error of the failing step, or nil.
func ExecuteSteps(ctx context.Context, steps []Step, out io.Writer, observer StepObserver) ([]StepResult, error) {
	if observer == nil {
		observer = NullStepObserver{}
	}
	tracer := otel.Tracer(TracerName)
	results := make([]StepResult, 0, len(steps))

	for _, s := range steps {
		stepCtx, span := tracer.Start(ctx, SpanPrefix+s.Name)
		start := time.Now()
		err := s.Run(stepCtx, out)
		result := StepResult{Name: s.Name, Duration: time.Since(start), Err: err}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		results = append(results, result)
		observer.OnStepComplete(result)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
