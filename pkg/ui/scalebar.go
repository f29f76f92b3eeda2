package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// MinScaleWidth is the narrowest scale that still fits the tick labels.
const MinScaleWidth = 30

// column maps a display percentage onto a cell index in [0, width-1].
func column(pct float64, width int) int {
	if width <= 1 {
		return 0
	}
	c := int(math.Round(pct / 100 * float64(width-1)))
	if c < 0 {
		return 0
	}
	if c > width-1 {
		return width - 1
	}
	return c
}

// ruler is a single text row onto which labels are placed without overlap.
type ruler struct {
	cells []rune
	used  []bool
}

func newRuler(width int) *ruler {
	r := &ruler{cells: make([]rune, width), used: make([]bool, width)}
	for i := range r.cells {
		r.cells[i] = ' '
	}
	return r
}

// place writes text centred on col, shifted inward at the edges. Labels that
// would overlap an earlier one are dropped.
func (r *ruler) place(col int, text string, center bool) bool {
	runes := []rune(text)
	n := len(runes)
	if n == 0 || n > len(r.cells) {
		return false
	}
	start := col
	if center {
		start = col - n/2
	}
	if start < 0 {
		start = 0
	}
	if start+n > len(r.cells) {
		start = len(r.cells) - n
	}
	for i := start; i < start+n; i++ {
		if r.used[i] {
			return false
		}
	}
	for i, ch := range runes {
		r.cells[start+i] = ch
		r.used[start+i] = true
	}
	return true
}

func (r *ruler) String() string {
	return string(r.cells)
}

// RenderScale draws the interactive scale: marker labels, the zone-coloured
// bar with the slider thumb, and tick rows in percent and ppm.
func RenderScale(r reading.Reading, width int, t Theme) string {
	if width < MinScaleWidth {
		width = MinScaleWidth
	}
	muted := t.Renderer.NewStyle().Foreground(t.Muted)

	var lines []string

	ends := newRuler(width)
	ends.place(0, "0%", false)
	right := units.FormatTick(r.MaxScale) + " vol"
	ends.place(width-len(right), right, false)
	lines = append(lines, muted.Render(ends.String()))

	labels := newRuler(width)
	pins := newRuler(width)
	for _, m := range r.Markers {
		if !m.Visible {
			continue
		}
		col := column(m.Pct, width)
		labels.place(col, m.Label, true)
		pins.place(col, GlyphMarker, false)
	}
	lines = append(lines,
		t.Renderer.NewStyle().Foreground(t.Subtext).Render(labels.String()),
		t.Renderer.NewStyle().Foreground(t.Subtext).Render(pins.String()),
	)

	lines = append(lines, renderBar(r, width, t))

	thumb := newRuler(width)
	thumbCol := column(r.Position, width)
	thumb.place(thumbCol, GlyphThumb, false)
	if r.Concentration > 0 {
		ind := units.FormatIndicator(r.Concentration)
		if thumbCol+2+len(ind) <= width {
			thumb.place(thumbCol+2, ind, false)
		} else {
			thumb.place(thumbCol-1-len(ind), ind, false)
		}
	}
	lines = append(lines, t.Renderer.NewStyle().Foreground(t.Text).Bold(true).Render(thumb.String()))

	pctRow := newRuler(width)
	ppmRow := newRuler(width)
	for i, tick := range r.Ticks {
		col := column(100*tick/r.MaxScale, width)
		center := i != 0 && i != len(r.Ticks)-1
		pctLabel := units.FormatTick(tick)
		ppmLabel := units.FormatTickPPM(tick)
		if !center && i != 0 {
			col -= len(pctLabel) - 1
		}
		pctRow.place(col, pctLabel, center)
		if !center && i != 0 {
			col = column(100*tick/r.MaxScale, width) - len(ppmLabel) + 1
		}
		ppmRow.place(col, ppmLabel, center)
	}
	lines = append(lines,
		muted.Render(pctRow.String()),
		t.Renderer.NewStyle().Foreground(t.PPM).Faint(true).Render(ppmRow.String())+muted.Render(" ppm"),
	)

	return strings.Join(lines, "\n")
}

// renderBar colours each cell by the zone of the concentration at its centre
// and draws the thumb as a bright column.
func renderBar(r reading.Reading, width int, t Theme) string {
	thumbCol := column(r.Position, width)
	var b strings.Builder

	runStart := 0
	runZone := cellZone(r, 0, width)
	flush := func(end int) {
		if end <= runStart {
			return
		}
		glyph := GlyphBarActive
		if runZone == r.Zone {
			glyph = GlyphBar
		}
		style := t.Renderer.NewStyle().Foreground(Hex(zone.Info(runZone).Color))
		b.WriteString(style.Render(strings.Repeat(glyph, end-runStart)))
	}

	for i := 0; i < width; i++ {
		if i == thumbCol {
			flush(i)
			b.WriteString(t.Renderer.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render("┃"))
			runStart = i + 1
			if i+1 < width {
				runZone = cellZone(r, i+1, width)
			}
			continue
		}
		z := cellZone(r, i, width)
		if z != runZone {
			flush(i)
			runStart = i
			runZone = z
		}
	}
	flush(width)
	return b.String()
}

func cellZone(r reading.Reading, i, width int) zone.Zone {
	mid := (float64(i) + 0.5) / float64(width) * r.MaxScale
	z, err := zone.Classify(mid, r.Gas)
	if err != nil {
		return zone.Safe
	}
	return z
}

// RenderLegendBar draws the five legend bands proportionally to their share
// of the display range.
func RenderLegendBar(r reading.Reading, width int, t Theme) string {
	if width < MinScaleWidth {
		width = MinScaleWidth
	}
	var b strings.Builder
	used := 0
	for i, s := range r.Segments {
		cells := int(math.Round(s.Width / 100 * float64(width)))
		if i == len(r.Segments)-1 {
			cells = width - used
		}
		if used+cells > width {
			cells = width - used
		}
		if cells <= 0 {
			continue
		}
		used += cells

		text := strings.Repeat(" ", cells)
		if s.ShowLabel && len(s.Label) <= cells {
			pad := (cells - len(s.Label)) / 2
			text = strings.Repeat(" ", pad) + s.Label + strings.Repeat(" ", cells-pad-len(s.Label))
		}
		style := t.Renderer.NewStyle().
			Background(Hex(zone.Info(s.Zone).Color)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(s.Zone == r.Zone)
		b.WriteString(style.Render(text))
	}
	return b.String()
}
