package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/cadence/internal/ui"
)

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	selected  lipgloss.Style
	flash     lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1F2937")
	dim := lipgloss.Color("#6B7280")

	if dark {
		text = lipgloss.Color("#F9FAFB")
		dim = lipgloss.Color("#9CA3AF")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(text),
		hint:      lipgloss.NewStyle().Foreground(dim),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(text),
		flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// accent returns the style for text in the colours of theme.
func accent(theme ui.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.From))
}
