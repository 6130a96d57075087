// Package orchestration executes the demo steps in order and reports each
// outcome to a StepObserver. It keeps tracing and step bookkeeping out of the
// application layer, which only declares the steps and reacts to results.
package orchestration
