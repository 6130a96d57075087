// Package ui provides theme and color support for diagnostic output.
// It defines color schemes and builds lipgloss styles bound to a specific
// stream, so error messages on stderr can be colored without ever touching
// the plain program output on stdout.
package ui
