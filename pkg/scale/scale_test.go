package scale

import (
	"math"
	"testing"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/zone"
)

var catalogGases = []model.Gas{
	{ID: "general", LEL: 5, UEL: 15},
	{ID: "methane", LEL: 5.0, UEL: 15.0},
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

func TestDisplayRangeUnzoomed(t *testing.T) {
	for _, g := range catalogGases {
		if got := DisplayRange(g, false); got != 100 {
			t.Errorf("%s: unzoomed range %v, want 100", g.ID, got)
		}
	}
}

func TestDisplayRangeZoomed(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"methane", 27},
		{"hydrogen", 100},
		{"acetylene", 100},
		{"ammonia", 75},
		{"co", 100},
	}
	byID := map[string]model.Gas{}
	for _, g := range catalogGases {
		byID[g.ID] = g
	}
	for _, tt := range tests {
		got := DisplayRange(byID[tt.id], true)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: zoomed range %v, want %v", tt.id, got, tt.want)
		}
	}

	for _, g := range catalogGases {
		got := DisplayRange(g, true)
		if got > 100 {
			t.Errorf("%s: zoomed range %v exceeds 100", g.ID, got)
		}
		if g.UEL*1.8 <= 100 && got < g.UEL {
			t.Errorf("%s: zoomed range %v hides UEL %v", g.ID, got, g.UEL)
		}
		if got < math.Min(g.LEL*5, 100) {
			t.Errorf("%s: zoomed range %v below LEL floor", g.ID, got)
		}
	}
}

func TestDisplayRangeHighLEL(t *testing.T) {
	g := model.Gas{ID: "heavy", LEL: 25, UEL: 40}
	if got := DisplayRange(g, true); got != 100 {
		t.Errorf("expected clamp to 100, got %v", got)
	}
}

func TestTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{5, 1}, {10, 1}, {10.5, 5}, {27, 5}, {30, 5}, {30.1, 10}, {50, 10}, {75, 20}, {100, 20},
	}
	for _, tt := range tests {
		if got := TickStep(tt.max); got != tt.want {
			t.Errorf("TickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want []float64
	}{
		{"full scale", 100, []float64{0, 20, 40, 60, 80, 100}},
		{"methane zoom", 27, []float64{0, 5, 10, 15, 20, 25, 27}},
		{"exact multiple", 50, []float64{0, 10, 20, 30, 40, 50}},
		{"small", 7.5, []float64{0, 1, 2, 3, 4, 5, 6, 7, 7.5}},
		{"ammonia zoom", 75, []float64{0, 20, 40, 60, 75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("Ticks(%v) = %v, want %v", tt.max, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Ticks(%v)[%d] = %v, want %v", tt.max, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTicksInvariants(t *testing.T) {
	for _, g := range catalogGases {
		for _, zoomed := range []bool{false, true} {
			maxScale := DisplayRange(g, zoomed)
			ticks := Ticks(maxScale)
			if ticks[0] != 0 {
				t.Errorf("%s: first tick %v", g.ID, ticks[0])
			}
			if ticks[len(ticks)-1] != maxScale {
				t.Errorf("%s: last tick %v, want %v", g.ID, ticks[len(ticks)-1], maxScale)
			}
			for i := 1; i < len(ticks); i++ {
				if ticks[i] <= ticks[i-1] {
					t.Errorf("%s: ticks not strictly ascending: %v", g.ID, ticks)
				}
			}
		}
	}
}

func TestMarkers(t *testing.T) {
	methane := catalogGases[1]
	markers := Markers(methane, 100)
	if len(markers) != 4 {
		t.Fatalf("expected 4 markers, got %d", len(markers))
	}
	lel, ok := FindMarker(markers, MarkerLEL)
	if !ok || math.Abs(lel.Pct-5) > 1e-9 || !lel.Visible || !lel.Bold {
		t.Errorf("unexpected LEL marker %+v", lel)
	}
	lel10, _ := FindMarker(markers, MarkerLEL10)
	if math.Abs(lel10.Pct-0.5) > 1e-9 || !lel10.Visible {
		t.Errorf("unexpected 10%% LEL marker %+v", lel10)
	}

	acetylene := catalogGases[5]
	uel, _ := FindMarker(Markers(acetylene, 100), MarkerUEL)
	if uel.Pct != 100 || uel.Visible {
		t.Errorf("UEL on the right edge should be hidden: %+v", uel)
	}
	if uel.Value != 100 {
		t.Errorf("hidden marker should keep its value, got %v", uel.Value)
	}

	// Zoomed tighter than UEL: clamp to the edge.
	uel, _ = FindMarker(Markers(acetylene, 50), MarkerUEL)
	if uel.Pct != 100 || uel.Visible {
		t.Errorf("UEL past the edge should clamp and hide: %+v", uel)
	}

	if _, ok := FindMarker(nil, MarkerLEL); ok {
		t.Errorf("expected no marker in empty slice")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(13.5, 27); got != 50 {
		t.Errorf("Percent(13.5, 27) = %v", got)
	}
	if got := Percent(200, 100); got != 100 {
		t.Errorf("expected clamp at 100, got %v", got)
	}
	if got := Percent(-5, 100); got != 0 {
		t.Errorf("expected clamp at 0, got %v", got)
	}
	if got := RawPercent(200, 100); got != 200 {
		t.Errorf("RawPercent should not clamp, got %v", got)
	}
	if got := RawPercent(1, 0); got != 0 {
		t.Errorf("zero range should give 0, got %v", got)
	}
}

func TestSliderStep(t *testing.T) {
	if got := SliderStep(100); got != 0.1 {
		t.Errorf("SliderStep(100) = %v", got)
	}
}

func TestSegments(t *testing.T) {
	methane := catalogGases[1]
	segs := Segments(methane, 100)
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(segs))
	}
	total := 0.0
	for _, s := range segs {
		if s.Width < 0 {
			t.Errorf("negative width %+v", s)
		}
		total += s.Width
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("segment widths sum to %v", total)
	}
	if segs[3].Zone != zone.Explosive || math.Abs(segs[3].Width-10) > 1e-9 {
		t.Errorf("unexpected explosive segment %+v", segs[3])
	}
	if !segs[3].ShowLabel || segs[0].ShowLabel {
		t.Errorf("label flags wrong: safe=%v explosive=%v", segs[0].ShowLabel, segs[3].ShowLabel)
	}
	if segs[4].Zone != zone.TooRich || math.Abs(segs[4].Width-85) > 1e-9 {
		t.Errorf("unexpected rich segment %+v", segs[4])
	}
}

func TestRangeBands(t *testing.T) {
	bands := RangeBands(catalogGases)
	if len(bands) != len(catalogGases)-1 {
		t.Fatalf("expected %d bands, got %d", len(catalogGases)-1, len(bands))
	}
	for _, b := range bands {
		if b.ID == model.GeneralID {
			t.Errorf("generic profile should not be compared")
		}
		if b.From+b.Width > FullScale+1e-9 {
			t.Errorf("%s: band runs past the axis: %+v", b.ID, b)
		}
	}

	tests := []struct {
		id          string
		from, width float64
	}{
		{"methane", 5, 10},
		{"hydrogen", 4, 71},
		{"acetylene", 2.5, 97.5},
		{"ammonia", 15, 13},
	}
	for _, tt := range tests {
		var found bool
		for _, b := range bands {
			if b.ID != tt.id {
				continue
			}
			found = true
			if math.Abs(b.From-tt.from) > 1e-9 || math.Abs(b.Width-tt.width) > 1e-9 {
				t.Errorf("%s: from=%v width=%v, want %v %v", tt.id, b.From, b.Width, tt.from, tt.width)
			}
		}
		if !found {
			t.Errorf("%s: no band", tt.id)
		}
	}
}

func TestRangeBandsLabel(t *testing.T) {
	bands := RangeBands([]model.Gas{
		{ID: "methane", Name: "Methane", Formula: "CH4", LEL: 5, UEL: 15},
		{ID: "mix", Name: "Mix", Formula: "—", LEL: 1, UEL: 2},
	})
	if bands[0].Label != "CH4" {
		t.Errorf("formula should label the row, got %q", bands[0].Label)
	}
	if bands[1].Label != "Mix" {
		t.Errorf("placeholder formula should fall back to the name, got %q", bands[1].Label)
	}
}
