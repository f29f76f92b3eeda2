// Package units converts and formats gas concentrations.
package units

import (
	"fmt"
	"math"
	"strconv"
)

// PPMPerPercent converts percent by volume to parts per million.
const PPMPerPercent = 10000

// Display tiers, percent by volume.
const (
	ppmOnlyBelow    = 0.1
	percentOnlyFrom = 1.0
)

// ToPPM converts percent by volume to ppm
func ToPPM(percent float64) float64 {
	return percent * PPMPerPercent
}

// RoundPPM converts percent by volume to ppm rounded to the nearest integer
func RoundPPM(percent float64) int64 {
	return int64(math.Round(ToPPM(percent)))
}

// FormatConcentration renders a concentration in the unit conventionally used
// for its magnitude: trace levels in ppm, intermediate levels in both, and
// anything from 1% upward in percent by volume.
func FormatConcentration(c float64) string {
	switch {
	case c < ppmOnlyBelow:
		return fmt.Sprintf("%d ppm", RoundPPM(c))
	case c < percentOnlyFrom:
		return fmt.Sprintf("%d ppm (%.2f%%)", RoundPPM(c), c)
	default:
		return fmt.Sprintf("%.2f%% vol", c)
	}
}

// FormatIndicator is the short label drawn under the slider thumb.
func FormatIndicator(c float64) string {
	if c < percentOnlyFrom {
		return fmt.Sprintf("%d ppm", RoundPPM(c))
	}
	return fmt.Sprintf("%.2f%%", c)
}

// FormatTickPPM renders a tick value (percent) as a compact ppm label:
// 1.0M, 50K, 500.
func FormatTickPPM(mark float64) string {
	ppm := ToPPM(mark)
	switch {
	case ppm >= 1_000_000:
		return fmt.Sprintf("%.1fM", ppm/1_000_000)
	case ppm >= 1000:
		return fmt.Sprintf("%.0fK", ppm/1000)
	default:
		return strconv.FormatInt(int64(math.Round(ppm)), 10)
	}
}

// FormatPercent renders v with a fixed number of decimals and a % sign.
func FormatPercent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// FormatLimit renders a reference value such as an LEL with the shortest
// exact representation: 5%, 2.1%.
func FormatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatTick renders a tick value in percent with at most one decimal.
func FormatTick(mark float64) string {
	if mark == math.Trunc(mark) {
		return strconv.FormatFloat(mark, 'f', 0, 64) + "%"
	}
	return strconv.FormatFloat(mark, 'f', 1, 64) + "%"
}
