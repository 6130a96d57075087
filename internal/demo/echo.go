package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/quickrun/internal/errors"
)

// NamePrompt is written before reading the user's name. It has no trailing
// newline so the cursor stays on the prompt line.
const NamePrompt = "Enter your name: "

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// EchoName prompts for a name on out, reads one line from in and greets it.
//
// The prompt is flushed before the read blocks when out is buffered. The
// line is trimmed of surrounding whitespace. End-of-stream before any input
// greets an empty name ("Hello, !"); a final line without a newline is used
// as is. Failures to write, flush or read are returned as apperrors.IOError.
func EchoName(in io.Reader, out io.Writer) error {
	if _, err := io.WriteString(out, NamePrompt); err != nil {
		return apperrors.IOError{Op: "write prompt", Cause: err}
	}
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return apperrors.IOError{Op: "flush prompt", Cause: err}
		}
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return apperrors.IOError{Op: "read line", Cause: err}
	}

	if _, err := fmt.Fprintf(out, "Hello, %s!\n", strings.TrimSpace(line)); err != nil {
		return apperrors.IOError{Op: "write greeting", Cause: err}
	}
	return nil
}
