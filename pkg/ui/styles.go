package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kraitsura/lelscale/pkg/zone"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Glyphs
// ══════════════════════════════════════════════════════════════════════════════

// Glyphs used on the scale
const (
	GlyphBar         = "█"
	GlyphBarActive   = "▓"
	GlyphMarker      = "▼"
	GlyphThumb       = "▲"
	GlyphDot         = "●"
	GlyphTrack       = "─"
	GlyphEmptyLegend = "░"
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the default bordered card.
func PanelStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// AlertPanelStyle is the card border used while the reading is flammable.
func AlertPanelStyle(t Theme, z zone.Zone) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Hex(zone.Info(z).Glow)).
		Padding(0, 1)
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// RenderZoneBadge returns the zone tag on its zone colour, e.g. " EXPLOSIVE ".
func RenderZoneBadge(z zone.Zone, t Theme) string {
	info := zone.Info(z)
	return t.Renderer.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(Hex(info.Color)).
		Bold(true).
		Padding(0, 1).
		Render(info.Tag)
}

// RenderGasSwatch renders a coloured dot for a catalog colour.
func RenderGasSwatch(color string, t Theme) string {
	return t.Renderer.NewStyle().Foreground(Hex(color)).Render(GlyphDot)
}

// ══════════════════════════════════════════════════════════════════════════════
// METRIC VISUALIZATION
// ══════════════════════════════════════════════════════════════════════════════

// RenderMiniBar renders a mini horizontal bar for a value between 0 and 1,
// coloured by the zone the value represents.
func RenderMiniBar(value float64, width int, z zone.Zone, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(GlyphBar, filled) + strings.Repeat(GlyphEmptyLegend, width-filled)
	return t.Renderer.NewStyle().Foreground(Hex(zone.Info(z).Color)).Render(bar)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND PADDING
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// PadRight pads s with spaces to the given display width. Zone icons are
// double-width emoji, so byte or rune counts misalign columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Truncate shortens s to the display width, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
