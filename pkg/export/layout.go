// Package export renders static snapshots of a reading as SVG or PNG.
//
// Both renderers draw from the same layout so the files match.
package export

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// Canvas geometry, in pixels.
const (
	canvasWidth  = 900
	canvasHeight = 280
	marginX      = 40
	barTop       = 90
	barHeight    = 52
	barWidth     = canvasWidth - 2*marginX
)

const (
	colorBackground = "#0c1222"
	colorText       = "#f1f5f9"
	colorMuted      = "#64748b"
	colorThumb      = "#ffffff"
)

type rect struct {
	X, Y, W, H float64
	Fill       string
}

type line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
}

type label struct {
	X, Y   float64
	Text   string
	Fill   string
	Size   int
	Center bool
}

type layout struct {
	Title  string
	Rects  []rect
	Lines  []line
	Labels []label
}

func xAt(pct float64) float64 {
	return marginX + pct/100*barWidth
}

// buildLayout places every element of the scale for r.
func buildLayout(r reading.Reading) layout {
	var l layout
	l.Title = fmt.Sprintf("%s flammability range", r.Gas.DisplayName())

	l.Rects = append(l.Rects, rect{0, 0, canvasWidth, canvasHeight, colorBackground})

	header := r.Gas.DisplayName()
	if r.Gas.HasFormula() {
		header += " (" + r.Gas.Formula + ")"
	}
	header += fmt.Sprintf("  LEL %s  UEL %s", units.FormatLimit(r.Gas.LEL), units.FormatLimit(r.Gas.UEL))
	l.Labels = append(l.Labels,
		label{X: marginX, Y: 30, Text: header, Fill: colorText, Size: 16},
		label{X: marginX, Y: barTop - 12, Text: "0%", Fill: colorMuted, Size: 11},
		label{X: canvasWidth - marginX - 60, Y: barTop - 12, Text: units.FormatTick(r.MaxScale) + " vol", Fill: colorMuted, Size: 11},
	)

	for _, s := range r.Segments {
		if s.Width <= 0 {
			continue
		}
		l.Rects = append(l.Rects, rect{
			X: xAt(s.From), Y: barTop, W: s.Width / 100 * barWidth, H: barHeight,
			Fill: zone.Info(s.Zone).Color,
		})
		if s.ShowLabel {
			l.Labels = append(l.Labels, label{
				X: xAt(s.From + s.Width/2), Y: barTop + barHeight/2 + 4,
				Text: s.Label, Fill: colorText, Size: 11, Center: true,
			})
		}
	}

	for _, m := range r.Markers {
		if !m.Visible {
			continue
		}
		width := 1.0
		if m.Bold {
			width = 2
		}
		x := xAt(m.Pct)
		l.Lines = append(l.Lines, line{x, barTop - 4, x, barTop + barHeight + 4, colorText, width})
		l.Labels = append(l.Labels, label{X: x, Y: barTop - 26, Text: m.Label, Fill: colorText, Size: 10, Center: true})
	}

	thumb := xAt(r.Position)
	l.Rects = append(l.Rects, rect{thumb - 3, barTop - 8, 6, barHeight + 16, colorThumb})

	tickY := float64(barTop + barHeight + 22)
	for _, t := range r.Ticks {
		x := xAt(100 * t / r.MaxScale)
		l.Lines = append(l.Lines, line{x, barTop + barHeight, x, barTop + barHeight + 6, colorMuted, 1})
		l.Labels = append(l.Labels,
			label{X: x, Y: tickY, Text: units.FormatTick(t), Fill: colorMuted, Size: 11, Center: true},
			label{X: x, Y: tickY + 16, Text: units.FormatTickPPM(t) + " ppm", Fill: colorMuted, Size: 9, Center: true},
		)
	}

	status := fmt.Sprintf("%s %s  %s", r.Info.Icon, r.Info.Tag, r.Display)
	l.Labels = append(l.Labels,
		label{X: marginX, Y: canvasHeight - 40, Text: status, Fill: r.Info.Glow, Size: 16},
		label{X: marginX, Y: canvasHeight - 18, Text: r.Info.Advice, Fill: colorText, Size: 11},
	)
	return l
}

// hexColor converts a hex colour to a paint colour; invalid input is black.
func hexColor(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Black
	}
	return c
}
