package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the renderer and semantic colours for every view.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	LEL lipgloss.AdaptiveColor
	UEL lipgloss.AdaptiveColor
	PPM lipgloss.AdaptiveColor
	Vol lipgloss.AdaptiveColor
}

// DefaultTheme returns the dark-first palette used by the scale.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},
		Secondary: lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94a3b8"},
		Text:      lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#334155", Dark: "#cbd5e1"},
		Muted:     lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"},
		Border:    lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#334155"},
		Highlight: lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#1e293b"},
		LEL:       lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"},
		UEL:       lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"},
		PPM:       lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},
		Vol:       lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"},
	}
}

// Hex wraps a catalog or zone colour for lipgloss.
func Hex(s string) lipgloss.Color {
	if s == "" {
		return lipgloss.Color("#64748b")
	}
	return lipgloss.Color(s)
}
