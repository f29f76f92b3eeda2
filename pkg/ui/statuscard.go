package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// RenderStatusCard shows the zone of the current reading: icon, labels,
// formatted concentration and the advice line.
func RenderStatusCard(r reading.Reading, width int, t Theme) string {
	info := r.Info
	accent := t.Renderer.NewStyle().Foreground(Hex(info.Glow)).Bold(true)

	title := accent.Render(info.Icon+"  "+info.Label) + "  " + RenderZoneBadge(r.Zone, t)
	local := ""
	if info.LabelLocal != "" {
		local = t.Renderer.NewStyle().Foreground(t.Subtext).Render(info.LabelLocal)
	}
	conc := t.Renderer.NewStyle().Foreground(t.Text).Bold(true).Render(r.Display)
	advice := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).
		Width(max(width-4, MinBoxWidth)).Render(info.Advice)

	lines := []string{title}
	if local != "" {
		lines = append(lines, local)
	}
	lines = append(lines, "", conc, advice)

	style := PanelStyle(t)
	if r.Zone.IsFlammable() {
		style = AlertPanelStyle(t, r.Zone)
	}
	return style.Width(max(width-2, MinBoxWidth)).Render(strings.Join(lines, "\n"))
}

// RenderStats renders the four quick figures in a row of small boxes, with a
// bar of the distance to the LEL underneath.
func RenderStats(r reading.Reading, width int, t Theme) string {
	s := r.Stats
	cells := []struct{ label, value string }{
		{"% of LEL", fmt.Sprintf("%.1f%%", s.PercentOfLEL)},
		{"ppm", fmt.Sprintf("%d", s.PPM)},
		{"% vol", units.FormatPercent(s.PercentVolume, 3)},
		{"to LEL", s.DistanceToLEL},
	}

	boxWidth := max((width-len(cells)*2)/len(cells), 12)
	labelStyle := t.Renderer.NewStyle().Foreground(t.Muted)
	valueStyle := t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
	boxes := make([]string, 0, len(cells))
	for _, c := range cells {
		boxes = append(boxes, PanelStyle(t).Width(boxWidth).Render(
			labelStyle.Render(c.label)+"\n"+valueStyle.Render(c.value)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	barWidth := max(lipgloss.Width(row)-12, 10)
	gauge := labelStyle.Render("LEL  ") + RenderMiniBar(s.PercentOfLEL/100, barWidth, r.Zone, t) +
		labelStyle.Render(fmt.Sprintf(" %3.0f%%", min(s.PercentOfLEL, 100)))
	return row + "\n" + gauge
}

// RenderLegend lists every zone with its band description, highlighting the
// active one.
func RenderLegend(current zone.Zone, width int, t Theme) string {
	var lines []string
	for _, z := range zone.All {
		info := zone.Info(z)
		swatch := t.Renderer.NewStyle().Foreground(Hex(info.Color)).Render(GlyphBar + GlyphBar)
		text := Truncate(info.Band, max(width-6, 10))
		style := t.Renderer.NewStyle().Foreground(t.Muted)
		marker := "  "
		if z == current {
			style = t.Renderer.NewStyle().Foreground(Hex(info.Glow)).Bold(true)
			marker = "▸ "
		}
		lines = append(lines, marker+swatch+" "+style.Render(text))
	}
	return strings.Join(lines, "\n")
}

// RenderAlarms shows the standard detector alarm levels for the gas.
func RenderAlarms(r reading.Reading, t Theme) string {
	title := t.Renderer.NewStyle().Foreground(t.Secondary).Bold(true).Render("DETECTOR ALARMS")
	lines := []string{title}
	for _, a := range r.Alarms {
		hit := r.Concentration >= a.Percent && r.Concentration > 0
		mark := t.Renderer.NewStyle().Foreground(t.Muted).Render("○")
		if hit {
			mark = t.Renderer.NewStyle().Foreground(Hex(zone.Info(zone.Caution).Glow)).Render(GlyphDot)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s", mark,
			PadRight(a.Name, 24),
			t.Renderer.NewStyle().Foreground(t.Vol).Render(PadRight(units.FormatPercent(a.Percent, 2), 8)),
			t.Renderer.NewStyle().Foreground(t.PPM).Render(fmt.Sprintf("%d ppm", a.PPM))))
	}
	return strings.Join(lines, "\n")
}

// ReadingSummary is the plain-text line copied to the clipboard.
func ReadingSummary(r reading.Reading) string {
	return fmt.Sprintf("%s: %s [%s] %.1f%% of LEL (LEL %s, UEL %s)",
		r.Gas.DisplayName(), r.Display, r.Info.Tag, r.Stats.PercentOfLEL,
		units.FormatLimit(r.Gas.LEL), units.FormatLimit(r.Gas.UEL))
}
