package demo

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/quickrun/internal/errors"
)

// Greeting is the fixed line printed first by every run.
const Greeting = "Hello from Rust Quick Run!"

// Greet writes Greeting followed by a newline to w.
func Greet(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Greeting); err != nil {
		return apperrors.IOError{Op: "write greeting", Cause: err}
	}
	return nil
}
