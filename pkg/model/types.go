package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxPercent is the upper bound of any concentration expressed in percent by volume.
const MaxPercent = 100.0

// GeneralID is the generic "combustible gas" entry, which stands for no
// particular substance.
const GeneralID = "general"

// ErrInvalidGasProfile is returned when a gas profile violates 0 < LEL < UEL <= 100.
var ErrInvalidGasProfile = errors.New("invalid gas profile")

// Gas is an immutable flammability reference profile.
// LEL and UEL are percent by volume.
type Gas struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	NameLocal   string  `json:"name_local,omitempty" yaml:"name_local,omitempty"`
	LEL         float64 `json:"lel" yaml:"lel"`
	UEL         float64 `json:"uel" yaml:"uel"`
	Formula     string  `json:"formula,omitempty" yaml:"formula,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Validate checks if the gas profile is physically plausible
func (g Gas) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidGasProfile)
	}
	if math.IsNaN(g.LEL) || math.IsInf(g.LEL, 0) || g.LEL <= 0 {
		return fmt.Errorf("%w: %s: LEL must be a positive number, got %v", ErrInvalidGasProfile, g.ID, g.LEL)
	}
	if math.IsNaN(g.UEL) || math.IsInf(g.UEL, 0) {
		return fmt.Errorf("%w: %s: UEL must be a finite number, got %v", ErrInvalidGasProfile, g.ID, g.UEL)
	}
	if g.UEL <= g.LEL {
		return fmt.Errorf("%w: %s: UEL (%v) must be greater than LEL (%v)", ErrInvalidGasProfile, g.ID, g.UEL, g.LEL)
	}
	if g.UEL > MaxPercent {
		return fmt.Errorf("%w: %s: UEL (%v) cannot exceed %v%%", ErrInvalidGasProfile, g.ID, g.UEL, MaxPercent)
	}
	if g.Color != "" {
		if _, err := colorful.Hex(g.Color); err != nil {
			return fmt.Errorf("%w: %s: color %q is not a hex colour: %v", ErrInvalidGasProfile, g.ID, g.Color, err)
		}
	}
	return nil
}

// DisplayName returns the name, falling back to the ID
func (g Gas) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return g.ID
}

// HasFormula reports whether the profile carries a real chemical formula.
// Placeholder entries use "—" or leave it empty.
func (g Gas) HasFormula() bool {
	return g.Formula != "" && g.Formula != "—" && g.Formula != "-"
}

// ExplosiveWidth is the width of the flammable band (UEL - LEL).
func (g Gas) ExplosiveWidth() float64 {
	return g.UEL - g.LEL
}
