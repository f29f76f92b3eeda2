package ui

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/scale"
	"github.com/kraitsura/lelscale/pkg/units"
)

const (
	comparisonLabelWidth  = 8
	comparisonLimitsWidth = 10
	comparisonMinTrack    = 20
)

// comparisonLimits renders "5–15%".
func comparisonLimits(b scale.RangeBand) string {
	return strconv.FormatFloat(b.LEL, 'f', -1, 64) + "–" + units.FormatLimit(b.UEL)
}

// bandCells maps a band onto [start, end) cells of a track. Every band is at
// least one cell wide.
func bandCells(b scale.RangeBand, width int) (int, int) {
	start := int(math.Round(b.From / 100 * float64(width)))
	end := int(math.Round((b.From + b.Width) / 100 * float64(width)))
	if start > width-1 {
		start = width - 1
	}
	if end > width {
		end = width
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

// RenderComparison draws the explosive band of each gas on a shared 0-100%
// axis. The row of highlightID is marked and drawn solid.
func RenderComparison(bands []scale.RangeBand, highlightID string, width int, t Theme) string {
	prefixWidth := 2 + comparisonLabelWidth
	track := width - prefixWidth - 1 - comparisonLimitsWidth
	if track < comparisonMinTrack {
		track = comparisonMinTrack
	}

	muted := t.Renderer.NewStyle().Foreground(t.Muted)
	lines := []string{t.Renderer.NewStyle().Foreground(t.Subtext).Bold(true).Render("FLAMMABLE RANGES")}

	for _, b := range bands {
		selected := b.ID == highlightID
		prefix := "  "
		glyph := "▒"
		if selected {
			prefix = "▸ "
			glyph = GlyphBar
		}
		colour := Hex(b.Color)
		labelStyle := t.Renderer.NewStyle().Foreground(colour).Bold(selected)
		bandStyle := t.Renderer.NewStyle().Foreground(colour)
		trackStyle := muted
		if !selected {
			labelStyle = labelStyle.Faint(true)
			bandStyle = bandStyle.Faint(true)
			trackStyle = trackStyle.Faint(true)
		}

		start, end := bandCells(b, track)
		row := prefix +
			labelStyle.Render(PadRight(Truncate(b.Label, comparisonLabelWidth-1), comparisonLabelWidth)) +
			trackStyle.Render(strings.Repeat(GlyphTrack, start)) +
			bandStyle.Render(strings.Repeat(glyph, end-start)) +
			trackStyle.Render(strings.Repeat(GlyphTrack, track-end)) +
			" " + muted.Render(comparisonLimits(b))
		lines = append(lines, row)
	}

	axis := newRuler(track)
	for i, tick := range scale.ComparisonTicks {
		text := units.FormatTick(tick)
		col := column(tick, track)
		switch i {
		case 0:
			axis.place(col, text, false)
		case len(scale.ComparisonTicks) - 1:
			axis.place(col-len(text)+1, text, false)
		default:
			axis.place(col, text, true)
		}
	}
	lines = append(lines, strings.Repeat(" ", prefixWidth)+muted.Faint(true).Render(axis.String()))

	return strings.Join(lines, "\n")
}

// ComparisonModel is the overlay where a gas is picked from its range row
type ComparisonModel struct {
	bands  []scale.RangeBand
	cursor int

	width  int
	height int
	theme  Theme

	confirmed bool
	cancelled bool
}

// NewComparisonModel lists every comparable gas of the catalog with the
// cursor on currentID, or on the first row when currentID has no row.
func NewComparisonModel(catalog *model.Catalog, currentID string, theme Theme) ComparisonModel {
	m := ComparisonModel{
		bands:  scale.RangeBands(catalog.Gases()),
		theme:  theme,
		width:  80,
		height: 24,
	}
	for i, b := range m.bands {
		if b.ID == currentID {
			m.cursor = i
		}
	}
	return m
}

// SetSize updates the overlay dimensions
func (m *ComparisonModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles a key press
func (m *ComparisonModel) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.bands)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.bands) > 0 {
			m.confirmed = true
		}
	case "esc", "c", "q":
		m.cancelled = true
	}
}

// IsConfirmed returns true if the user picked a row
func (m *ComparisonModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled returns true if the user closed the overlay
func (m *ComparisonModel) IsCancelled() bool {
	return m.cancelled
}

// Highlighted returns the gas ID under the cursor
func (m *ComparisonModel) Highlighted() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.bands) {
		return "", false
	}
	return m.bands[m.cursor].ID, true
}

// View renders the comparison box centred in the viewport
func (m *ComparisonModel) View() string {
	t := m.theme
	id, _ := m.Highlighted()

	boxWidth := min(contentWidth(m.width), 96)
	if boxWidth < 40 {
		boxWidth = 40
	}

	body := RenderComparison(m.bands, id, boxWidth-6, t)
	if len(m.bands) == 0 {
		body = t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render("  No gases to compare")
	}
	footer := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).
		Render("↑/↓: navigate • enter: select • esc: close")

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(body+"\n\n"+footer))
}
