// Package demo implements the steps of the quick-run demonstration program:
// the fixed greeting, the summation of a small sequence, and the interactive
// name echo. The Fibonacci step lives in package fibonacci.
//
// Every step writes to an io.Writer supplied by the caller and returns an
// error instead of aborting the process, so the application layer decides
// how a failed stream is reported.
package demo
