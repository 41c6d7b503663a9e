package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles the viewer renders with. Plan styles the
// floorplan block so the room glyphs read apart from the surrounding chrome.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Plan     lipgloss.Style
	Warn     lipgloss.Style
}

// accentColor is the teal used across spacegen surfaces.
const accentColor = lipgloss.Color("36")

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor),
		Plan: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warn: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")),
	}
}
