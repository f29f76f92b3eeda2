// Package session holds the presentation layer's mutable selection state.
// It is owned by a single goroutine (the UI event loop) and never shared.
package session

import (
	"math"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/scale"
)

// State is the selected gas, concentration and zoom flag.
type State struct {
	GasID         string
	Concentration float64
	Zoomed        bool
}

// New returns a state with the given gas selected and the concentration at 0.
func New(gasID string, zoomed bool) State {
	return State{GasID: gasID, Zoomed: zoomed}
}

// SelectGas switches gas and resets the concentration.
func (s *State) SelectGas(id string) {
	s.GasID = id
	s.Concentration = 0
}

// ToggleZoom flips the zoom flag and resets the concentration.
func (s *State) ToggleZoom() {
	s.Zoomed = !s.Zoomed
	s.Concentration = 0
}

// MaxScale is the display range for the state's zoom flag.
func (s State) MaxScale(g model.Gas) float64 {
	return scale.DisplayRange(g, s.Zoomed)
}

// SetConcentration clamps c to [0, maxScale]. NaN becomes 0.
func (s *State) SetConcentration(c, maxScale float64) {
	switch {
	case math.IsNaN(c) || c < 0:
		c = 0
	case c > maxScale:
		c = maxScale
	}
	s.Concentration = c
}

// Step moves the concentration by n slider steps, clamped to the range.
// The result is snapped to the step grid so repeated steps do not drift.
func (s *State) Step(n int, maxScale float64) {
	step := scale.SliderStep(maxScale)
	if step <= 0 {
		return
	}
	idx := math.Round(s.Concentration/step) + float64(n)
	s.SetConcentration(idx*step, maxScale)
}
