package demo

import (
	"strconv"
	"strings"
)

// DefaultSequence returns a fresh copy of the sequence summed by the demo.
func DefaultSequence() []int {
	return []int{1, 2, 3, 4, 5}
}

// Sum returns the arithmetic sum of seq, accumulated in a single pass.
func Sum(seq []int) int {
	total := 0
	for _, v := range seq {
		total += v
	}
	return total
}

// FormatSequence renders seq in list display form, e.g. "[1, 2, 3, 4, 5]".
// An empty or nil sequence renders as "[]".
func FormatSequence(seq []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
