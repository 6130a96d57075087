package ui

import (
	"bytes"
	"testing"
)

// Theme state is global, so these tests do not run in parallel.

func TestSetTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	t.Run("flag disables color", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("InitTheme(true) = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("InitTheme with NO_COLOR = %q, want none", GetCurrentTheme().Name)
		}
	})
}

func TestNewStyles_PlainForNonTerminal(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })
	SetCurrentTheme(DarkTheme)

	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if got := styles.Error.Render("Error:"); got != "Error:" {
		t.Errorf("Error style on a buffer rendered %q, want plain text", got)
	}
	if got := styles.Accent.Render("-n"); got != "-n" {
		t.Errorf("Accent style on a buffer rendered %q, want plain text", got)
	}
}
