package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveStep(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveStep("greeter", 3*time.Microsecond, nil)
	r.ObserveStep("summation", time.Microsecond, nil)
	r.ObserveStep("echo", time.Millisecond, errors.New("read line: broken pipe"))

	tests := []struct {
		step, result string
		want         float64
	}{
		{"greeter", ResultOK, 1},
		{"summation", ResultOK, 1},
		{"echo", ResultError, 1},
		{"echo", ResultOK, 0},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(r.stepsTotal.WithLabelValues(tt.step, tt.result)); got != tt.want {
			t.Errorf("steps_total{step=%q,result=%q} = %v, want %v", tt.step, tt.result, got, tt.want)
		}
	}

	if got := testutil.CollectAndCount(r.stepDuration); got != 3 {
		t.Errorf("step_duration_seconds series = %d, want 3", got)
	}
}

func TestRecorder_RecordFibonacci(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         uint64
		wantCalls float64
	}{
		{"demo index", 10, 177},
		{"base case", 1, 1},
		{"count would overflow", 93, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRecorder()
			r.RecordFibonacci(tt.n)

			if got := testutil.ToFloat64(r.fibonacciIndex); got != float64(tt.n) {
				t.Errorf("fibonacci_index = %v, want %d", got, tt.n)
			}
			if got := testutil.ToFloat64(r.fibonacciCalls); got != tt.wantCalls {
				t.Errorf("fibonacci_recursive_calls = %v, want %v", got, tt.wantCalls)
			}
		})
	}
}

func TestRecorder_WriteText(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveStep("fibonacci", 2*time.Microsecond, nil)
	r.RecordFibonacci(10)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# HELP quickrun_fibonacci_index",
		"# TYPE quickrun_step_duration_seconds histogram",
		"quickrun_fibonacci_index 10",
		"quickrun_fibonacci_recursive_calls 177",
		`quickrun_steps_total{result="ok",step="fibonacci"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition missing %q:\n%s", want, out)
		}
	}
}

func TestRecorder_Gatherer(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.RecordFibonacci(5)

	count, err := testutil.GatherAndCount(r.Gatherer(), "quickrun_fibonacci_index")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("GatherAndCount = %d, want 1", count)
	}
}
