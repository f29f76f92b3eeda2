package zone

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/kraitsura/lelscale/pkg/model"
)

var methane = model.Gas{ID: "methane", Name: "Methane", LEL: 5.0, UEL: 15.0}

var testGases = []model.Gas{
	{ID: "general", LEL: 5, UEL: 15},
	methane,
	{ID: "propane", LEL: 2.1, UEL: 9.5},
	{ID: "hydrogen", LEL: 4.0, UEL: 75.0},
	{ID: "butane", LEL: 1.8, UEL: 8.4},
	{ID: "acetylene", LEL: 2.5, UEL: 100.0},
	{ID: "ethanol", LEL: 3.3, UEL: 19.0},
	{ID: "ammonia", LEL: 15.0, UEL: 28.0},
	{ID: "co", LEL: 12.5, UEL: 74.0},
	{ID: "ethylene", LEL: 2.7, UEL: 36.0},
	{ID: "lpg", LEL: 1.8, UEL: 9.5},
	{ID: "hexane", LEL: 1.1, UEL: 7.5},
}

func mustClassify(t *testing.T, c float64, g model.Gas) Zone {
	t.Helper()
	z, err := Classify(c, g)
	if err != nil {
		t.Fatalf("Classify(%v, %s): %v", c, g.ID, err)
	}
	return z
}

func TestClassifyMethane(t *testing.T) {
	tests := []struct {
		name string
		c    float64
		want Zone
	}{
		{"zero", 0, Safe},
		{"below 10% LEL", 0.4, Safe},
		{"at 10% LEL", 0.5, Safe},
		{"just above 10% LEL", 0.6, Caution},
		{"at 20% LEL", 1.0, Caution},
		{"between 20% and 50% LEL", 2.0, Warning},
		{"at 50% LEL", 2.5, Warning},
		{"between 50% LEL and LEL", 4.0, PreLel},
		{"at LEL", 5.0, PreLel},
		{"inside explosive band", 10, Explosive},
		{"at UEL", 15, Explosive},
		{"above UEL", 20, TooRich},
		{"pure gas", 100, TooRich},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustClassify(t, tt.c, methane); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.c, got, tt.want)
			}
		})
	}
}

func TestClassifyBoundariesAllGases(t *testing.T) {
	for _, g := range testGases {
		t.Run(g.ID, func(t *testing.T) {
			if z := mustClassify(t, 0, g); z != Safe {
				t.Errorf("0 -> %s, want safe", z)
			}
			if z := mustClassify(t, g.LEL, g); z != PreLel {
				t.Errorf("LEL -> %s, want pre_lel", z)
			}
			above := math.Nextafter(g.LEL, math.Inf(1))
			if z := mustClassify(t, above, g); z != Explosive {
				t.Errorf("LEL+eps -> %s, want explosive", z)
			}
			if z := mustClassify(t, g.UEL, g); z != Explosive {
				t.Errorf("UEL -> %s, want explosive", z)
			}
			if g.UEL < model.MaxPercent {
				aboveUEL := math.Nextafter(g.UEL, math.Inf(1))
				if z := mustClassify(t, aboveUEL, g); z != TooRich {
					t.Errorf("UEL+eps -> %s, want too_rich", z)
				}
			}
			if z := mustClassify(t, 1e9, g); z != TooRich {
				t.Errorf("huge -> %s, want too_rich", z)
			}
		})
	}
}

func TestClassifyMonotone(t *testing.T) {
	for _, g := range testGases {
		prev := Safe
		for i := 0; i <= 20000; i++ {
			c := float64(i) * 0.005
			z := mustClassify(t, c, g)
			if z < prev {
				t.Fatalf("%s: zone went back from %s to %s at %v", g.ID, prev, z, c)
			}
			prev = z
		}
		if prev != TooRich && g.UEL < model.MaxPercent {
			t.Errorf("%s: sweep ended in %s", g.ID, prev)
		}
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	for _, c := range []float64{-0.001, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Classify(c, methane); !errors.Is(err, ErrInvalidConcentration) {
			t.Errorf("Classify(%v): expected ErrInvalidConcentration, got %v", c, err)
		}
	}

	bad := model.Gas{ID: "bad", LEL: 10, UEL: 5}
	if _, err := Classify(1, bad); !errors.Is(err, model.ErrInvalidGasProfile) {
		t.Errorf("expected ErrInvalidGasProfile, got %v", err)
	}
}

func TestThresholdsAscending(t *testing.T) {
	for _, g := range testGases {
		table := Thresholds(g)
		if len(table) != 5 {
			t.Fatalf("%s: expected 5 thresholds, got %d", g.ID, len(table))
		}
		for i := 1; i < len(table); i++ {
			if table[i].Limit <= table[i-1].Limit {
				t.Errorf("%s: threshold %d (%v) not above %d (%v)", g.ID, i, table[i].Limit, i-1, table[i-1].Limit)
			}
			if table[i].Zone != table[i-1].Zone+1 {
				t.Errorf("%s: zones not consecutive at %d", g.ID, i)
			}
		}
	}

	table := Thresholds(methane)
	want := []float64{0.5, 1.0, 2.5, 5.0, 15.0}
	for i, w := range want {
		if math.Abs(table[i].Limit-w) > 1e-12 {
			t.Errorf("t%d = %v, want %v", i+1, table[i].Limit, w)
		}
	}
}

func TestNextPrevThreshold(t *testing.T) {
	next, ok := NextThreshold(0, methane)
	if !ok || next.Limit != 0.5 {
		t.Errorf("next from 0: %+v %v", next, ok)
	}
	next, ok = NextThreshold(5, methane)
	if !ok || next.Limit != 15 {
		t.Errorf("next from LEL: %+v %v", next, ok)
	}
	if _, ok := NextThreshold(15, methane); ok {
		t.Errorf("expected no threshold above UEL")
	}

	prev, ok := PrevThreshold(15, methane)
	if !ok || prev.Limit != 5 {
		t.Errorf("prev from UEL: %+v %v", prev, ok)
	}
	if _, ok := PrevThreshold(0.5, methane); ok {
		t.Errorf("expected no threshold below 10%% LEL")
	}
}

func TestZoneText(t *testing.T) {
	for _, z := range All {
		b, err := z.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", z, err)
		}
		parsed, err := ParseZone(string(b))
		if err != nil || parsed != z {
			t.Errorf("ParseZone(%q) = %v, %v", b, parsed, err)
		}
	}

	if _, err := ParseZone("boom"); err == nil {
		t.Errorf("expected error for unknown zone")
	}
	if _, err := Zone(42).MarshalText(); err == nil {
		t.Errorf("expected error for invalid zone")
	}

	out, err := json.Marshal(struct {
		Z Zone `json:"z"`
	}{Explosive})
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(out) != `{"z":"explosive"}` {
		t.Errorf("unexpected json %s", out)
	}
}

func TestSeverityOrdering(t *testing.T) {
	for i := 1; i < len(All); i++ {
		if All[i].Severity() <= All[i-1].Severity() {
			t.Errorf("%s not more severe than %s", All[i], All[i-1])
		}
	}
	if !Explosive.IsFlammable() || TooRich.IsFlammable() {
		t.Errorf("only the explosive zone is flammable")
	}
}

func TestInfoCoversAllZones(t *testing.T) {
	for _, z := range All {
		p := Info(z)
		if p.Label == "" || p.Tag == "" || p.Icon == "" || p.Advice == "" {
			t.Errorf("%s: incomplete presentation %+v", z, p)
		}
		if len(p.Color) != 7 || p.Color[0] != '#' {
			t.Errorf("%s: bad color %q", z, p.Color)
		}
	}
	if Info(Zone(99)).Tag != "SAFE" {
		t.Errorf("unknown zone should fall back to safe presentation")
	}
}
