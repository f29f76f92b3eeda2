// Package reading composes the classifier, scale and formatter outputs into a
// single display-ready view of one concentration.
package reading

import (
	"fmt"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/scale"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/zone"

	"gonum.org/v1/gonum/floats"
)

// InRange is the distance label used while the concentration sits between LEL and UEL.
const InRange = "in range"

// Stats are the quick figures shown under the status card.
type Stats struct {
	PercentOfLEL  float64 `json:"percent_of_lel"`
	PPM           int64   `json:"ppm"`
	PercentVolume float64 `json:"percent_volume"`
	DistanceToLEL string  `json:"distance_to_lel"`
}

// Alarm is a conventional gas-detector alarm level.
type Alarm struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	PPM     int64   `json:"ppm"`
}

// Reading is the full, rendered-agnostic state of one concentration for one gas.
type Reading struct {
	Gas           model.Gas         `json:"gas"`
	Concentration float64           `json:"concentration"`
	Zoomed        bool              `json:"zoomed"`
	Zone          zone.Zone         `json:"zone"`
	Info          zone.Presentation `json:"info"`
	Display       string            `json:"display"`
	MaxScale      float64           `json:"max_scale"`
	Position      float64           `json:"position"`
	Markers       []scale.Marker    `json:"markers"`
	Ticks         []float64         `json:"ticks"`
	Segments      []scale.Segment   `json:"segments"`
	Stats         Stats             `json:"stats"`
	Alarms        []Alarm           `json:"alarms"`
}

// Compute builds a Reading. It fails on the same inputs zone.Classify rejects.
func Compute(g model.Gas, c float64, zoomed bool) (Reading, error) {
	z, err := zone.Classify(c, g)
	if err != nil {
		return Reading{}, err
	}

	maxScale := scale.DisplayRange(g, zoomed)
	return Reading{
		Gas:           g,
		Concentration: c,
		Zoomed:        zoomed,
		Zone:          z,
		Info:          zone.Info(z),
		Display:       units.FormatConcentration(c),
		MaxScale:      maxScale,
		Position:      scale.Percent(c, maxScale),
		Markers:       scale.Markers(g, maxScale),
		Ticks:         scale.Ticks(maxScale),
		Segments:      scale.Segments(g, maxScale),
		Stats:         ComputeStats(g, c),
		Alarms:        Alarms(g),
	}, nil
}

// ComputeStats derives the quick figures for a concentration.
func ComputeStats(g model.Gas, c float64) Stats {
	return Stats{
		PercentOfLEL:  c / g.LEL * 100,
		PPM:           units.RoundPPM(c),
		PercentVolume: c,
		DistanceToLEL: DistanceToLEL(g, c),
	}
}

// DistanceToLEL describes how far c is from the explosive band: the margin
// left below LEL, InRange inside the band, or the excess over UEL.
func DistanceToLEL(g model.Gas, c float64) string {
	switch {
	case c < g.LEL:
		return fmt.Sprintf("%.2f%%", g.LEL-c)
	case c <= g.UEL:
		return InRange
	default:
		return fmt.Sprintf("+%.2f%%", c-g.UEL)
	}
}

// Alarms returns the first (10% LEL) and second (20% LEL) detector alarm levels.
func Alarms(g model.Gas) []Alarm {
	first := g.LEL * zone.CautionFraction
	second := g.LEL * zone.WarningFraction
	return []Alarm{
		{Name: "first alarm (10% LEL)", Percent: first, PPM: units.RoundPPM(first)},
		{Name: "second alarm (20% LEL)", Percent: second, PPM: units.RoundPPM(second)},
	}
}

// Sweep returns n readings evenly spaced from 0 to the display range.
func Sweep(g model.Gas, zoomed bool, n int) ([]Reading, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	points := floats.Span(make([]float64, n), 0, scale.DisplayRange(g, zoomed))

	out := make([]Reading, 0, n)
	for _, c := range points {
		r, err := Compute(g, c, zoomed)
		if err != nil {
			return nil, fmt.Errorf("sweep at %v: %w", c, err)
		}
		out = append(out, r)
	}
	return out, nil
}
