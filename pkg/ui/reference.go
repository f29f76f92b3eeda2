package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// ReferenceMarkdown builds the reference sheet for a gas: its limits, the
// zone table with absolute thresholds and the detector alarm levels.
func ReferenceMarkdown(g model.Gas) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", g.DisplayName())
	if g.NameLocal != "" {
		fmt.Fprintf(&b, "_%s_\n\n", g.NameLocal)
	}
	if g.HasFormula() {
		fmt.Fprintf(&b, "Formula: `%s`\n\n", g.Formula)
	}
	if g.Description != "" {
		b.WriteString(g.Description + "\n\n")
	}

	fmt.Fprintf(&b, "- **LEL** %s vol (%s ppm)\n", units.FormatLimit(g.LEL), units.FormatTickPPM(g.LEL))
	fmt.Fprintf(&b, "- **UEL** %s vol (%s ppm)\n", units.FormatLimit(g.UEL), units.FormatTickPPM(g.UEL))
	fmt.Fprintf(&b, "- **Explosive range** %s wide\n\n", units.FormatLimit(g.ExplosiveWidth()))

	b.WriteString("## Zones\n\n")
	b.WriteString("| Zone | Up to | Advice |\n|---|---|---|\n")
	for _, th := range zone.Thresholds(g) {
		info := zone.Info(th.Zone)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", info.Label, units.FormatPercent(th.Limit, 2), info.Advice)
	}
	rich := zone.Info(zone.TooRich)
	fmt.Fprintf(&b, "| %s | above %s | %s |\n\n", rich.Label, units.FormatLimit(g.UEL), rich.Advice)

	b.WriteString("## Detector alarms\n\n")
	for _, a := range reading.Alarms(g) {
		fmt.Fprintf(&b, "- %s: %s (%d ppm)\n", a.Name, units.FormatPercent(a.Percent, 2), a.PPM)
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal. style is a glamour
// standard style name such as "dark", "light" or "notty".
func RenderMarkdown(md string, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// ReferenceModel is the scrollable reference overlay
type ReferenceModel struct {
	visible  bool
	width    int
	height   int
	theme    Theme
	style    string
	gas      model.Gas
	viewport viewport.Model
}

// NewReferenceModel creates a hidden reference overlay
func NewReferenceModel(theme Theme, style string) ReferenceModel {
	if style == "" {
		style = "dark"
	}
	vp := viewport.New(60, 20)
	vp.Style = lipgloss.NewStyle()
	return ReferenceModel{theme: theme, style: style, viewport: vp}
}

// Show opens the overlay for a gas
func (m *ReferenceModel) Show(g model.Gas) {
	m.visible = true
	m.gas = g
	m.refresh()
}

// Hide closes the overlay
func (m *ReferenceModel) Hide() {
	m.visible = false
}

// IsVisible returns true if overlay is showing
func (m ReferenceModel) IsVisible() bool {
	return m.visible
}

// SetSize resizes the viewport and re-renders for the new wrap width
func (m *ReferenceModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-8, 20)
	m.viewport.Height = max(height-6, MinContentHeight)
	if m.visible {
		m.refresh()
	}
}

func (m *ReferenceModel) refresh() {
	out, err := RenderMarkdown(ReferenceMarkdown(m.gas), m.viewport.Width, m.style)
	if err != nil {
		out = ReferenceMarkdown(m.gas)
	}
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

// Update scrolls on navigation keys and closes on esc, q or i
func (m ReferenceModel) Update(msg tea.Msg) (ReferenceModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q", "i":
			m.Hide()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the overlay box
func (m ReferenceModel) View() string {
	if !m.visible {
		return ""
	}
	hint := m.theme.Renderer.NewStyle().Faint(true).Italic(true).
		Render(fmt.Sprintf("↑/↓ scroll • esc close • %3.f%%", m.viewport.ScrollPercent()*100))
	box := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(0, 1).
		Render(m.viewport.View() + "\n" + hint)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
