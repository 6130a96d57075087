package demo

import (
	"bytes"
	"errors"
	"io"
	"testing"

	apperrors "github.com/agbru/quickrun/internal/errors"
)

// failingWriter rejects every write with err.
type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestGreet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Greet(&buf); err != nil {
		t.Fatalf("Greet() error = %v", err)
	}
	if got, want := buf.String(), "Hello from Rust Quick Run!\n"; got != want {
		t.Errorf("Greet() wrote %q, want %q", got, want)
	}
}

func TestGreet_WriteError(t *testing.T) {
	t.Parallel()
	err := Greet(failingWriter{err: io.ErrClosedPipe})

	var ioErr apperrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Op != "write greeting" {
		t.Errorf("Op = %q, want %q", ioErr.Op, "write greeting")
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("cause should be io.ErrClosedPipe")
	}
}
