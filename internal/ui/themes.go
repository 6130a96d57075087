package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the lipgloss colors used for diagnostic output.
// Each field is a lipgloss.TerminalColor suitable for Style.Foreground().
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Error indicates failures.
	Error lipgloss.TerminalColor
	// Warning is used for caution messages.
	Warning lipgloss.TerminalColor
	// Accent highlights values such as flag names.
	Accent lipgloss.TerminalColor
	// Dim is used for hints.
	Dim lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Error:   lipgloss.Color("#FF4444"),
		Warning: lipgloss.Color("#FFB347"),
		Accent:  lipgloss.Color("#FF8C00"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Error:   lipgloss.Color("124"),
		Warning: lipgloss.Color("130"),
		Accent:  lipgloss.Color("27"),
		Dim:     lipgloss.Color("240"),
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{
		Name:    "none",
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names select dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/):
// if noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// Styles holds the rendered styles for one output stream.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds styles from the current theme for the stream w.
// The renderer detects the color profile of w itself, so writers that are
// not terminals (pipes, files, buffers) receive plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	t := GetCurrentTheme()
	return Styles{
		Error:   r.NewStyle().Foreground(t.Error).Bold(true),
		Warning: r.NewStyle().Foreground(t.Warning),
		Accent:  r.NewStyle().Foreground(t.Accent),
		Dim:     r.NewStyle().Foreground(t.Dim).Italic(true),
	}
}
