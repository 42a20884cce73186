// Package ui provides the visual styling for the tagquiz terminal
// output, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors (default)
	LightForeground = lipgloss.Color("#263238")
	LightAccent     = lipgloss.Color("#3949AB")
	LightMuted      = lipgloss.Color("#90A4AE")
	LightBorder     = lipgloss.Color("#CFD8DC")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#ECEFF1")
	DarkAccent     = lipgloss.Color("#7986CB")
	DarkMuted      = lipgloss.Color("#78909C")
	DarkBorder     = lipgloss.Color("#455A64")

	// Semantic colors (same in both modes)
	Correct = lipgloss.Color("#43A047")
	Wrong   = lipgloss.Color("#E53935")
	Missing = lipgloss.Color("#FB8C00")
	Info    = lipgloss.Color("#039BE5")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal hints or returns light mode.
// TODO: use muesli/termenv for robust background detection instead of COLORFGBG.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; ANSI indexes 0-6
	// and 8 are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("TAGQUIZ_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components of the quiz output.
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Quiz feedback
	Correct lipgloss.Style
	Wrong   lipgloss.Style
	Missing lipgloss.Style
	Score   lipgloss.Style

	// Interactive
	Prompt lipgloss.Style
	Hint   lipgloss.Style

	// Components
	TableHeader lipgloss.Style
	Badge       lipgloss.Style
	Divider     lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Correct: lipgloss.NewStyle().
			Foreground(Correct).
			Bold(true),

		Wrong: lipgloss.NewStyle().
			Foreground(Wrong).
			Bold(true),

		Missing: lipgloss.NewStyle().
			Foreground(Missing),

		Score: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(Info),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true).
			Underline(true),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// PlainStyles returns styles that render text unchanged, for --no-color
// runs and for tests that compare output byte for byte.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:       plain,
		Subtitle:    plain,
		Body:        plain,
		Muted:       plain,
		Bold:        plain,
		Correct:     plain,
		Wrong:       plain,
		Missing:     plain,
		Score:       plain,
		Prompt:      plain,
		Hint:        plain,
		TableHeader: plain,
		Badge:       plain,
		Divider:     plain,
	}
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", width))
}
