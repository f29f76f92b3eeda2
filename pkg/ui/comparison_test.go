package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/scale"
)

func comparisonRow(t *testing.T, out, limits string) string {
	t.Helper()
	for _, l := range strings.Split(out, "\n") {
		if strings.HasSuffix(l, " "+limits) {
			return l
		}
	}
	t.Fatalf("no row ending in %q:\n%s", limits, out)
	return ""
}

func TestRenderComparison(t *testing.T) {
	bands := scale.RangeBands(testCatalog(t).Gases())
	out := RenderComparison(bands, "acetylene", 100, testTheme())
	lines := strings.Split(out, "\n")

	// Title, one row per gas except the generic one, axis.
	if len(lines) != 1+11+1 {
		t.Fatalf("expected 13 lines, got %d:\n%s", len(lines), out)
	}
	if strings.Contains(out, "General") {
		t.Errorf("generic profile should not be listed")
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 100 {
			t.Errorf("line wider than requested: %d", w)
		}
	}

	acetylene := comparisonRow(t, out, "2.5–100%")
	if !strings.HasPrefix(acetylene, "▸ ") {
		t.Errorf("selected row should be marked: %q", acetylene)
	}
	if !strings.HasSuffix(acetylene, GlyphBar+" 2.5–100%") {
		t.Errorf("acetylene band should run to the end of the axis: %q", acetylene)
	}

	methane := comparisonRow(t, out, "5–15%")
	if strings.HasPrefix(methane, "▸") || strings.Contains(methane, GlyphBar) {
		t.Errorf("unselected row drawn as selected: %q", methane)
	}

	axis := lines[len(lines)-1]
	for _, want := range []string{"0%", "25%", "50%", "75%", "100%"} {
		if !strings.Contains(axis, want) {
			t.Errorf("axis missing %q: %q", want, axis)
		}
	}
}

func TestBandCellsMinimumWidth(t *testing.T) {
	start, end := bandCells(scale.RangeBand{From: 50, Width: 0.1}, 40)
	if end-start != 1 {
		t.Errorf("narrow band should take one cell, got [%d,%d)", start, end)
	}
	start, end = bandCells(scale.RangeBand{From: 99.9, Width: 0.1}, 40)
	if start != 39 || end != 40 {
		t.Errorf("band at the right edge = [%d,%d), want [39,40)", start, end)
	}
}

func TestComparisonModelNavigation(t *testing.T) {
	c := NewComparisonModel(testCatalog(t), "propane", testTheme())
	if id, _ := c.Highlighted(); id != "propane" {
		t.Errorf("cursor should start on the current gas, got %q", id)
	}

	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	if id, _ := c.Highlighted(); id != "methane" {
		t.Errorf("up past the top should stop on methane, got %q", id)
	}

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !c.IsConfirmed() {
		t.Errorf("enter should confirm")
	}
}

func TestComparisonModelGenericStartsAtTop(t *testing.T) {
	c := NewComparisonModel(testCatalog(t), "general", testTheme())
	if id, _ := c.Highlighted(); id != "methane" {
		t.Errorf("generic gas has no row, cursor should be on the first, got %q", id)
	}
	c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !c.IsCancelled() || c.IsConfirmed() {
		t.Errorf("esc should cancel")
	}
}
