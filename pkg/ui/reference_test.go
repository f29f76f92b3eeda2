package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReferenceMarkdown(t *testing.T) {
	md := ReferenceMarkdown(methane)
	for _, want := range []string{"# Methane", "`CH4`", "**LEL** 5% vol (50K ppm)", "**UEL** 15% vol", "## Zones", "| Too rich", "## Detector alarms", "5000 ppm"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestReferenceMarkdownSkipsPlaceholderFormula(t *testing.T) {
	g := methane
	g.Formula = "—"
	if strings.Contains(ReferenceMarkdown(g), "Formula") {
		t.Errorf("placeholder formula should not be shown")
	}
}

func TestRenderMarkdownNoTTY(t *testing.T) {
	out, err := RenderMarkdown(ReferenceMarkdown(methane), 80, "notty")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(out, "Methane") || !strings.Contains(out, "Detector alarms") {
		t.Errorf("rendered output lost content:\n%s", out)
	}
}

func TestReferenceModelLifecycle(t *testing.T) {
	m := NewReferenceModel(testTheme(), "notty")
	m.SetSize(100, 40)
	if m.View() != "" {
		t.Errorf("hidden overlay should render nothing")
	}
	m.Show(methane)
	if !m.IsVisible() || !strings.Contains(m.View(), "Methane") {
		t.Fatalf("shown overlay should render the gas")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !m.IsVisible() {
		t.Errorf("scrolling should keep the overlay open")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsVisible() {
		t.Errorf("esc should close the overlay")
	}
}

func TestHelpOverlayListsBindings(t *testing.T) {
	h := NewHelpOverlayModel(testTheme(), defaultKeyMap())
	h.Show()
	out := h.View()
	for _, want := range []string{"zoom explosive range", "next threshold", "choose gas", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if h.IsVisible() {
		t.Errorf("any key should close help")
	}
}
