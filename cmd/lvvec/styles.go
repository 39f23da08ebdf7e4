package main

import "github.com/charmbracelet/lipgloss"

// Color palette for trace output on dark terminals.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

// styles groups the lipgloss styles used by the renderers.
type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	grow   lipgloss.Style
	shrink lipgloss.Style
	err    lipgloss.Style
}

// newStyles returns the palette, or unstyled output when plain is set.
func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()

		return styles{title: s, muted: s, grow: s, shrink: s, err: s}
	}

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		muted:  lipgloss.NewStyle().Foreground(colorMuted),
		grow:   lipgloss.NewStyle().Foreground(colorSuccess),
		shrink: lipgloss.NewStyle().Foreground(colorWarning),
		err:    lipgloss.NewStyle().Foreground(colorError),
	}
}
