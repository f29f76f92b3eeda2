// Package scale maps concentrations and zone thresholds onto a bounded
// display range.
package scale

import (
	"math"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// FullScale is the unzoomed display range, percent by volume.
const FullScale = model.MaxPercent

// Zoom factors around the explosive band.
const (
	zoomUELFactor = 1.8
	zoomLELFactor = 5.0
)

// sliderResolution is the number of slider steps across the display range.
const sliderResolution = 1000

// DisplayRange returns maxScale for the gas. Zoomed mode tightens the range
// to keep the explosive band prominent but never exceeds FullScale.
func DisplayRange(g model.Gas, zoomed bool) float64 {
	if !zoomed {
		return FullScale
	}
	return math.Min(math.Max(g.UEL*zoomUELFactor, g.LEL*zoomLELFactor), FullScale)
}

// SliderStep is the granularity of one slider step for the given range.
func SliderStep(maxScale float64) float64 {
	return maxScale / sliderResolution
}

// RawPercent is value as a percentage of maxScale, unclamped.
func RawPercent(value, maxScale float64) float64 {
	if maxScale <= 0 {
		return 0
	}
	return value / maxScale * 100
}

// Percent is value as a percentage of maxScale, clamped to [0,100].
func Percent(value, maxScale float64) float64 {
	return clampPct(RawPercent(value, maxScale))
}

func clampPct(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// MarkerKind identifies one of the reference lines on the scale.
type MarkerKind string

const (
	MarkerLEL10 MarkerKind = "lel10"
	MarkerLEL20 MarkerKind = "lel20"
	MarkerLEL   MarkerKind = "lel"
	MarkerUEL   MarkerKind = "uel"
)

// Marker is a reference line positioned on the display range.
type Marker struct {
	Kind    MarkerKind `json:"kind"`
	Label   string     `json:"label"`
	Value   float64    `json:"value"`
	Pct     float64    `json:"pct"`
	Visible bool       `json:"visible"`
	Bold    bool       `json:"bold,omitempty"`
}

// Markers computes the 10%-LEL, 20%-LEL, LEL and UEL lines. Markers sitting
// on or past either edge are not Visible but keep their arithmetic values.
func Markers(g model.Gas, maxScale float64) []Marker {
	specs := []struct {
		kind  MarkerKind
		label string
		value float64
		bold  bool
	}{
		{MarkerLEL10, "10% LEL", g.LEL * zone.CautionFraction, false},
		{MarkerLEL20, "20% LEL", g.LEL * zone.WarningFraction, false},
		{MarkerLEL, "LEL", g.LEL, true},
		{MarkerUEL, "UEL", g.UEL, true},
	}

	markers := make([]Marker, 0, len(specs))
	for _, s := range specs {
		raw := RawPercent(s.value, maxScale)
		markers = append(markers, Marker{
			Kind:    s.kind,
			Label:   s.label,
			Value:   s.value,
			Pct:     clampPct(raw),
			Visible: raw > 0 && raw < 100,
			Bold:    s.bold,
		})
	}
	return markers
}

// FindMarker looks up a single marker by kind.
func FindMarker(markers []Marker, kind MarkerKind) (Marker, bool) {
	for _, m := range markers {
		if m.Kind == kind {
			return m, true
		}
	}
	return Marker{}, false
}

// TickStep picks the tick spacing for a display range.
func TickStep(maxScale float64) float64 {
	switch {
	case maxScale <= 10:
		return 1
	case maxScale <= 30:
		return 5
	case maxScale <= 50:
		return 10
	default:
		return 20
	}
}

// Ticks returns tick values from 0 to maxScale in TickStep increments. The
// last element is always exactly maxScale.
func Ticks(maxScale float64) []float64 {
	if maxScale <= 0 {
		return []float64{0}
	}
	step := TickStep(maxScale)
	n := int(math.Floor(maxScale/step)) + 1
	ticks := make([]float64, 0, n+1)
	for i := 0; float64(i)*step <= maxScale; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	if ticks[len(ticks)-1] != maxScale {
		ticks = append(ticks, maxScale)
	}
	return ticks
}

// Segment is one coloured band of the legend bar.
type Segment struct {
	Zone      zone.Zone `json:"zone"`
	Label     string    `json:"label"`
	From      float64   `json:"from"`
	To        float64   `json:"to"`
	Width     float64   `json:"width"`
	ShowLabel bool      `json:"show_label"`
}

// minLabelWidth is the narrowest segment, in percent, that gets a label.
const minLabelWidth = 8

// Segments splits the display range into the five legend bands. Warning and
// pre-LEL share one band from 20% LEL to LEL.
func Segments(g model.Gas, maxScale float64) []Segment {
	lel10 := Percent(g.LEL*zone.CautionFraction, maxScale)
	lel20 := Percent(g.LEL*zone.WarningFraction, maxScale)
	lel := Percent(g.LEL, maxScale)
	uel := Percent(g.UEL, maxScale)

	bands := []struct {
		z        zone.Zone
		label    string
		from, to float64
	}{
		{zone.Safe, "Safe", 0, lel10},
		{zone.Caution, "10% LEL", lel10, lel20},
		{zone.Warning, "Warning", lel20, lel},
		{zone.Explosive, "Explosive!", lel, uel},
		{zone.TooRich, "Rich", uel, 100},
	}

	segs := make([]Segment, 0, len(bands))
	for _, b := range bands {
		w := b.to - b.from
		if w < 0 {
			w = 0
		}
		segs = append(segs, Segment{
			Zone:      b.z,
			Label:     b.label,
			From:      b.from,
			To:        b.to,
			Width:     w,
			ShowLabel: w > minLabelWidth,
		})
	}
	return segs
}

// RangeBand is one row of the flammable range comparison: the LEL-UEL band
// of a gas on a shared 0-100% axis.
type RangeBand struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
	LEL   float64 `json:"lel"`
	UEL   float64 `json:"uel"`
	From  float64 `json:"from"`
	Width float64 `json:"width"`
}

// ComparisonTicks are the axis labels under the comparison rows.
var ComparisonTicks = []float64{0, 25, 50, 75, 100}

// RangeBands lays out the explosive band of every gas except the generic
// profile, in the order given. Bands never run past FullScale.
func RangeBands(gases []model.Gas) []RangeBand {
	out := make([]RangeBand, 0, len(gases))
	for _, g := range gases {
		if g.ID == model.GeneralID {
			continue
		}
		label := g.DisplayName()
		if g.HasFormula() {
			label = g.Formula
		}
		out = append(out, RangeBand{
			ID:    g.ID,
			Label: label,
			Color: g.Color,
			LEL:   g.LEL,
			UEL:   g.UEL,
			From:  g.LEL,
			Width: math.Min(g.UEL-g.LEL, FullScale-g.LEL),
		})
	}
	return out
}
