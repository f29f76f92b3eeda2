package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadConcentration is returned for input ParseConcentration cannot read.
var ErrBadConcentration = errors.New("bad concentration")

// ParseConcentration reads a typed concentration and returns it in percent
// by volume. Accepted forms: "2.5", "2.5%", "2.5 % vol", "2.5vol",
// "5000 ppm", "5k ppm". A bare number is percent.
func ParseConcentration(s string) (float64, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("%w: empty input", ErrBadConcentration)
	}

	ppm := false
	switch {
	case strings.HasSuffix(in, "ppm"):
		ppm = true
		in = strings.TrimSuffix(in, "ppm")
	case strings.HasSuffix(in, "vol"):
		in = strings.TrimSuffix(in, "vol")
	}
	in = strings.TrimSpace(in)
	if !ppm {
		in = strings.TrimSpace(strings.TrimSuffix(in, "%"))
	}

	mult := 1.0
	if ppm && strings.HasSuffix(in, "k") {
		mult = 1000
		in = strings.TrimSuffix(in, "k")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadConcentration, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrBadConcentration, s)
	}

	if ppm {
		return v * mult / PPMPerPercent, nil
	}
	return v, nil
}
