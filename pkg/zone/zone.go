// Package zone classifies a gas concentration into a flammability hazard zone.
package zone

import (
	"errors"
	"fmt"
	"math"

	"github.com/kraitsura/lelscale/pkg/model"
)

// ErrInvalidConcentration is returned for negative, NaN or infinite concentrations.
var ErrInvalidConcentration = errors.New("invalid concentration")

// Zone is a hazard bucket. Values are ordered by severity, Safe lowest.
type Zone int

const (
	Safe Zone = iota
	Caution
	Warning
	PreLel
	Explosive
	TooRich
)

// All lists every zone in ascending severity.
var All = []Zone{Safe, Caution, Warning, PreLel, Explosive, TooRich}

var zoneNames = [...]string{
	Safe:      "safe",
	Caution:   "caution",
	Warning:   "warning",
	PreLel:    "pre_lel",
	Explosive: "explosive",
	TooRich:   "too_rich",
}

// String returns the machine name of the zone
func (z Zone) String() string {
	if !z.IsValid() {
		return fmt.Sprintf("zone(%d)", int(z))
	}
	return zoneNames[z]
}

// IsValid returns true if the zone is a recognized value
func (z Zone) IsValid() bool {
	return z >= Safe && z <= TooRich
}

// Severity is the caution-level ordering, 0 for Safe.
func (z Zone) Severity() int {
	return int(z)
}

// IsFlammable reports whether the mixture can ignite.
func (z Zone) IsFlammable() bool {
	return z == Explosive
}

// MarshalText implements encoding.TextMarshaler
func (z Zone) MarshalText() ([]byte, error) {
	if !z.IsValid() {
		return nil, fmt.Errorf("cannot marshal %s", z)
	}
	return []byte(zoneNames[z]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

// ParseZone maps a machine name back to its zone
func ParseZone(s string) (Zone, error) {
	for z, name := range zoneNames {
		if name == s {
			return Zone(z), nil
		}
	}
	return Safe, fmt.Errorf("unknown zone %q", s)
}

// Fractions of LEL at which the lower zones end, in ascending order.
const (
	CautionFraction = 0.10 // detector first alarm
	WarningFraction = 0.20 // detector second alarm
	PreLelFraction  = 0.50
)

// Threshold is an inclusive upper bound: concentrations <= Limit belong to Zone.
type Threshold struct {
	Limit float64
	Zone  Zone
	Label string
}

// Thresholds returns the ascending boundary table for a gas. Anything above
// the last limit is TooRich.
func Thresholds(g model.Gas) []Threshold {
	return []Threshold{
		{Limit: g.LEL * CautionFraction, Zone: Safe, Label: "10% LEL"},
		{Limit: g.LEL * WarningFraction, Zone: Caution, Label: "20% LEL"},
		{Limit: g.LEL * PreLelFraction, Zone: Warning, Label: "50% LEL"},
		{Limit: g.LEL, Zone: PreLel, Label: "LEL"},
		{Limit: g.UEL, Zone: Explosive, Label: "UEL"},
	}
}

// Classify returns the zone for a concentration in percent by volume.
// Rules (first match, inclusive upper bounds):
//   - safe:      c <= 10% LEL
//   - caution:   c <= 20% LEL
//   - warning:   c <= 50% LEL
//   - pre_lel:   c <= LEL
//   - explosive: c <= UEL
//   - too_rich:  otherwise
func Classify(concentration float64, g model.Gas) (Zone, error) {
	if math.IsNaN(concentration) || math.IsInf(concentration, 0) || concentration < 0 {
		return Safe, fmt.Errorf("%w: %v", ErrInvalidConcentration, concentration)
	}
	if err := g.Validate(); err != nil {
		return Safe, err
	}
	return classify(concentration, Thresholds(g)), nil
}

func classify(c float64, table []Threshold) Zone {
	for _, t := range table {
		if c <= t.Limit {
			return t.Zone
		}
	}
	return TooRich
}

// NextThreshold returns the smallest threshold strictly above c.
func NextThreshold(c float64, g model.Gas) (Threshold, bool) {
	for _, t := range Thresholds(g) {
		if t.Limit > c {
			return t, true
		}
	}
	return Threshold{}, false
}

// PrevThreshold returns the largest threshold strictly below c.
func PrevThreshold(c float64, g model.Gas) (Threshold, bool) {
	table := Thresholds(g)
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].Limit < c {
			return table[i], true
		}
	}
	return Threshold{}, false
}
