package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/kraitsura/lelscale/pkg/logging"
	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/scale"
	"github.com/kraitsura/lelscale/pkg/session"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// focus identifies which overlay receives key presses
type focus int

const (
	focusScale focus = iota
	focusSelector
	focusReference
	focusHelp
	focusInput
	focusCompare
)

// CatalogReloadedMsg is sent when the watched catalog file changes.
type CatalogReloadedMsg struct {
	Catalog *model.Catalog
	Err     error
}

// statusMsg is a transient footer message
type statusMsg struct {
	text  string
	isErr bool
}

// Model is the main Bubble Tea model of the scale
type Model struct {
	catalog *model.Catalog
	state   session.State

	keys        keyMap
	theme       Theme
	help        help.Model
	helpOverlay HelpOverlayModel
	reference   ReferenceModel
	selector    GasSelectorModel
	input       ConcentrationInputModel
	comparison  ComparisonModel
	focus       focus

	width  int
	height int

	copyFn func(string) error
	status statusMsg
}

// NewModel creates the model with gasID selected. An unknown gasID falls
// back to the first catalog entry.
func NewModel(catalog *model.Catalog, gasID string, zoomed bool) Model {
	if _, ok := catalog.Get(gasID); !ok {
		if g, ok := catalog.Default(); ok {
			gasID = g.ID
		}
	}
	theme := DefaultTheme(lipgloss.DefaultRenderer())
	keys := defaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = theme.Renderer.NewStyle().Foreground(theme.Primary)
	h.Styles.ShortDesc = theme.Renderer.NewStyle().Foreground(theme.Muted)

	return Model{
		catalog:     catalog,
		state:       session.New(gasID, zoomed),
		keys:        keys,
		theme:       theme,
		help:        h,
		helpOverlay: NewHelpOverlayModel(theme, keys),
		reference:   NewReferenceModel(theme, "dark"),
		copyFn:      clipboard.WriteAll,
		width:       100,
		height:      40,
	}
}

// WithTheme replaces the theme, e.g. to render against a custom renderer.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	m.helpOverlay = NewHelpOverlayModel(t, m.keys)
	m.reference = NewReferenceModel(t, m.reference.style)
	return m
}

// WithMarkdownStyle sets the glamour style of the reference overlay.
func (m Model) WithMarkdownStyle(style string) Model {
	m.reference = NewReferenceModel(m.theme, style)
	return m
}

// WithClipboard replaces the clipboard writer.
func (m Model) WithClipboard(fn func(string) error) Model {
	m.copyFn = fn
	return m
}

// WithConcentration sets the starting concentration, clamped to the display range.
func (m Model) WithConcentration(c float64) Model {
	m.state.SetConcentration(c, m.state.MaxScale(m.Gas()))
	return m
}

// State returns the current selection.
func (m Model) State() session.State {
	return m.state
}

// Gas returns the selected gas profile.
func (m Model) Gas() model.Gas {
	if g, ok := m.catalog.Get(m.state.GasID); ok {
		return g
	}
	g, _ := m.catalog.Default()
	return g
}

// Reading computes the current reading. The state is kept in range, so an
// error here means the catalog entry itself is broken.
func (m Model) Reading() (reading.Reading, error) {
	return reading.Compute(m.Gas(), m.state.Concentration, m.state.Zoomed)
}

// Status returns the footer message.
func (m Model) Status() (string, bool) {
	return m.status.text, m.status.isErr
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.helpOverlay.SetSize(msg.Width, msg.Height)
		m.reference.SetSize(msg.Width, msg.Height)
		m.selector.SetSize(msg.Width, msg.Height)
		m.input.SetSize(msg.Width, msg.Height)
		m.comparison.SetSize(msg.Width, msg.Height)
		return m, nil

	case CatalogReloadedMsg:
		m.applyCatalog(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) applyCatalog(msg CatalogReloadedMsg) {
	if msg.Err != nil {
		m.status = statusMsg{text: "catalog reload failed: " + msg.Err.Error(), isErr: true}
		if msg.Catalog == nil || msg.Catalog.Len() == 0 {
			return
		}
	}
	if msg.Catalog == nil || msg.Catalog.Len() == 0 {
		return
	}
	m.catalog = msg.Catalog

	g, ok := m.catalog.Get(m.state.GasID)
	if !ok {
		g, _ = m.catalog.Default()
		m.state.SelectGas(g.ID)
	} else {
		// Limits may have changed under the current concentration.
		m.state.SetConcentration(m.state.Concentration, m.state.MaxScale(g))
	}
	if msg.Err == nil {
		m.status = statusMsg{text: fmt.Sprintf("catalog reloaded (%d gases)", m.catalog.Len())}
	}
	if m.reference.IsVisible() {
		m.reference.Show(g)
	}
	if m.focus == focusCompare {
		m.comparison = NewComparisonModel(m.catalog, m.state.GasID, m.theme)
		m.comparison.SetSize(m.width, m.height)
	}
	logging.Infow("catalog applied", "gases", m.catalog.Len(), "gas", m.state.GasID)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusHelp:
		m.helpOverlay, _ = m.helpOverlay.Update(msg)
		if !m.helpOverlay.IsVisible() {
			m.focus = focusScale
		}
		return m, nil

	case focusReference:
		var cmd tea.Cmd
		m.reference, cmd = m.reference.Update(msg)
		if !m.reference.IsVisible() {
			m.focus = focusScale
		}
		return m, cmd

	case focusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		switch {
		case m.input.IsSubmitted():
			g := m.Gas()
			m.state.SetConcentration(m.input.Value(), m.state.MaxScale(g))
			m.focus = focusScale
		case m.input.IsCancelled():
			m.focus = focusScale
		}
		return m, cmd

	case focusSelector:
		cmd := m.selector.Update(msg)
		switch {
		case m.selector.IsConfirmed():
			if item := m.selector.SelectedItem(); item != nil {
				m.state.SelectGas(item.Gas.ID)
				logging.Debugw("gas selected", "gas", item.Gas.ID)
			}
			m.focus = focusScale
		case m.selector.IsCancelled():
			m.focus = focusScale
		}
		return m, cmd

	case focusCompare:
		m.comparison.Update(msg)
		switch {
		case m.comparison.IsConfirmed():
			if id, ok := m.comparison.Highlighted(); ok {
				m.state.SelectGas(id)
				logging.Debugw("gas selected from comparison", "gas", id)
			}
			m.focus = focusScale
		case m.comparison.IsCancelled():
			m.focus = focusScale
		}
		return m, nil
	}

	g := m.Gas()
	maxScale := m.state.MaxScale(g)
	m.status = statusMsg{}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Decrease):
		m.state.Step(-1, maxScale)
	case key.Matches(msg, m.keys.Increase):
		m.state.Step(1, maxScale)
	case key.Matches(msg, m.keys.DecreaseFast):
		m.state.Step(-10, maxScale)
	case key.Matches(msg, m.keys.IncreaseFast):
		m.state.Step(10, maxScale)
	case key.Matches(msg, m.keys.PageDown):
		m.state.Step(-100, maxScale)
	case key.Matches(msg, m.keys.PageUp):
		m.state.Step(100, maxScale)
	case key.Matches(msg, m.keys.Min):
		m.state.SetConcentration(0, maxScale)
	case key.Matches(msg, m.keys.Max):
		m.state.SetConcentration(maxScale, maxScale)
	case key.Matches(msg, m.keys.NextLimit):
		if th, ok := zone.NextThreshold(m.state.Concentration, g); ok {
			m.state.SetConcentration(th.Limit, maxScale)
		}
	case key.Matches(msg, m.keys.PrevLimit):
		if th, ok := zone.PrevThreshold(m.state.Concentration, g); ok {
			m.state.SetConcentration(th.Limit, maxScale)
		} else {
			m.state.SetConcentration(0, maxScale)
		}
	case key.Matches(msg, m.keys.Zoom):
		m.state.ToggleZoom()
		logging.Debugw("zoom toggled", "zoomed", m.state.Zoomed, "gas", g.ID)
	case key.Matches(msg, m.keys.Enter):
		m.input = NewConcentrationInputModel(g.DisplayName(), m.theme)
		m.input.SetSize(m.width, m.height)
		m.focus = focusInput
		return m, m.input.Init()
	case key.Matches(msg, m.keys.SelectGas):
		m.selector = NewGasSelectorModel(m.catalog, m.state.GasID, m.theme)
		m.selector.SetSize(m.width, m.height)
		m.focus = focusSelector
	case key.Matches(msg, m.keys.Compare):
		m.comparison = NewComparisonModel(m.catalog, m.state.GasID, m.theme)
		m.comparison.SetSize(m.width, m.height)
		m.focus = focusCompare
	case key.Matches(msg, m.keys.Reference):
		m.reference.SetSize(m.width, m.height)
		m.reference.Show(g)
		m.focus = focusReference
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.SetSize(m.width, m.height)
		m.helpOverlay.Show()
		m.focus = focusHelp
	case key.Matches(msg, m.keys.Copy):
		m.copyReading()
	}
	return m, nil
}

func (m *Model) copyReading() {
	r, err := m.Reading()
	if err != nil {
		m.status = statusMsg{text: err.Error(), isErr: true}
		return
	}
	if err := m.copyFn(ReadingSummary(r)); err != nil {
		logging.Warnw("clipboard write failed", "error", err)
		m.status = statusMsg{text: "copy failed: " + err.Error(), isErr: true}
		return
	}
	m.status = statusMsg{text: "copied reading to clipboard"}
}

func (m Model) View() string {
	switch m.focus {
	case focusSelector:
		return m.selector.View()
	case focusReference:
		return m.reference.View()
	case focusHelp:
		return m.helpOverlay.View()
	case focusInput:
		return m.input.View()
	case focusCompare:
		return m.comparison.View()
	}

	r, err := m.Reading()
	if err != nil {
		return m.theme.Renderer.NewStyle().Foreground(m.theme.LEL).
			Render("cannot render " + m.state.GasID + ": " + err.Error())
	}

	w := contentWidth(m.width)
	sections := []string{
		m.renderHeader(r, w),
		"",
		RenderScale(r, w, m.theme),
		RenderLegendBar(r, w, m.theme),
		"",
		RenderStatusCard(r, w, m.theme),
		RenderStats(r, w, m.theme),
	}

	if m.width >= BreakpointNarrow {
		legend := RenderLegend(r.Zone, w/2, m.theme)
		alarms := RenderAlarms(r, m.theme)
		if m.width >= BreakpointMedium {
			sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top,
				PanelStyle(m.theme).Width(w/2-2).Render(legend),
				PanelStyle(m.theme).Width(w-w/2-2).Render(alarms)))
		} else {
			sections = append(sections, "", legend, "", alarms)
		}
		if bands := scale.RangeBands(m.catalog.Gases()); len(bands) > 0 {
			sections = append(sections, "", RenderComparison(bands, m.state.GasID, w, m.theme))
		}
	}

	sections = append(sections, "", RenderDivider(w, m.theme), m.renderFooter())

	return clipLines(lipgloss.NewStyle().Padding(0, PagePadding).Render(strings.Join(sections, "\n")), m.width)
}

func (m Model) renderHeader(r reading.Reading, width int) string {
	t := m.theme
	title := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("LEL SCALE")
	gas := RenderGasSwatch(r.Gas.Color, t) + " " +
		t.Renderer.NewStyle().Foreground(t.Text).Bold(true).Render(r.Gas.DisplayName())
	if r.Gas.HasFormula() {
		gas += t.Renderer.NewStyle().Foreground(t.Subtext).Render(" (" + r.Gas.Formula + ")")
	}
	limits := t.Renderer.NewStyle().Foreground(t.LEL).Render("LEL "+units.FormatLimit(r.Gas.LEL)) + "  " +
		t.Renderer.NewStyle().Foreground(t.UEL).Render("UEL "+units.FormatLimit(r.Gas.UEL))

	mode := "full range 0-100%"
	if r.Zoomed {
		mode = "zoom 0-" + units.FormatTick(r.MaxScale)
	}
	modeStr := t.Renderer.NewStyle().Foreground(t.Muted).Render("[" + mode + "]")

	left := title + "  " + gas + "  " + limits
	line := left + "\n" + modeStr
	if gap := width - lipgloss.Width(left) - lipgloss.Width(modeStr); gap >= 1 {
		line = left + strings.Repeat(" ", gap) + modeStr
	}
	if r.Gas.Description != "" {
		line += "\n" + t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).
			Render(Truncate(r.Gas.Description, width))
	}
	return line
}

func (m Model) renderFooter() string {
	if m.status.text != "" {
		style := m.theme.Renderer.NewStyle().Foreground(m.theme.Vol)
		if m.status.isErr {
			style = m.theme.Renderer.NewStyle().Foreground(m.theme.LEL).Bold(true)
		}
		return style.Render(m.status.text) + "  " + m.help.View(m.keys)
	}
	return m.help.View(m.keys)
}

// clipLines truncates every line to the terminal width, keeping ANSI styling intact.
func clipLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = truncate.String(l, uint(width))
	}
	return strings.Join(lines, "\n")
}
