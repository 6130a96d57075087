// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplaySum], [DisplayFibonacci], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatSum], [FormatFibonacci].

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/agbru/quickrun/internal/demo"
	apperrors "github.com/agbru/quickrun/internal/errors"
	"github.com/agbru/quickrun/internal/ui"
)

// FormatSum formats the summation line, e.g. "Sum of [1, 2, 3, 4, 5] = 15".
func FormatSum(seq []int, sum int) string {
	return fmt.Sprintf("Sum of %s = %d", demo.FormatSequence(seq), sum)
}

// DisplaySum writes the summation line followed by a newline.
//
// Returns:
//   - error: An apperrors.IOError if the write fails.
func DisplaySum(out io.Writer, seq []int, sum int) error {
	if _, err := fmt.Fprintln(out, FormatSum(seq, sum)); err != nil {
		return apperrors.IOError{Op: "write sum", Cause: err}
	}
	return nil
}

// FormatFibonacci formats the Fibonacci line, e.g. "Fibonacci(10) = 55".
func FormatFibonacci(n, value uint64) string {
	return fmt.Sprintf("Fibonacci(%d) = %d", n, value)
}

// DisplayFibonacci writes the Fibonacci line followed by a newline.
//
// Returns:
//   - error: An apperrors.IOError if the write fails.
func DisplayFibonacci(out io.Writer, n, value uint64) error {
	if _, err := fmt.Fprintln(out, FormatFibonacci(n, value)); err != nil {
		return apperrors.IOError{Op: "write fibonacci", Cause: err}
	}
	return nil
}

// DisplayError writes a styled error message to out (normally stderr).
// Configuration errors get a usage hint on a second line.
func DisplayError(out io.Writer, err error) {
	styles := ui.NewStyles(out)
	fmt.Fprintf(out, "%s %v\n", styles.Error.Render("Error:"), err)

	var configErr apperrors.ConfigError
	if errors.As(err, &configErr) {
		fmt.Fprintln(out, styles.Dim.Render("Run with --help to see the available options."))
	}
}
