// Package ui implements the terminal presentation layer: it renders
// the session snapshot into screens and translates keystrokes into
// session events. No domain logic lives here.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared by both themes.
var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Theme holds the base color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#7a8699"),
		Border:     lipgloss.Color("#2a3850"),
		Accent:     lipgloss.Color("#8BC34A"),
	}
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1a1a1a"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#c4ccd8"),
		Accent:     lipgloss.Color("#33691E"),
	}
}

// DetectTheme picks a palette from the terminal's advertised
// background, falling back to dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// "foreground;background"; ANSI indexes 7 and 15 mean a
		// light background.
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || bgIdx >= 9 {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// Styles holds the styled components for every screen.
type Styles struct {
	Theme Theme

	TitleBar   lipgloss.Style
	Popup      lipgloss.Style
	PopupTitle lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style

	BookAvailable   lipgloss.Style
	BookUnavailable lipgloss.Style

	ModeHome     lipgloss.Style
	ModeSearch   lipgloss.Style
	ModeCheckout lipgloss.Style
	Footer       lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style

	Cursor lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border)

	return Styles{
		Theme: theme,

		TitleBar: border.
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Center),

		Popup: border.
			Padding(1, 2).
			Align(lipgloss.Center),

		PopupTitle: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		BookAvailable: lipgloss.NewStyle().
			Foreground(colorSuccess),

		BookUnavailable: lipgloss.NewStyle().
			Foreground(colorError),

		ModeHome: lipgloss.NewStyle().
			Foreground(colorSuccess),

		ModeSearch: lipgloss.NewStyle().
			Foreground(colorWarning),

		ModeCheckout: lipgloss.NewStyle().
			Foreground(colorInfo),

		Footer: border.
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
