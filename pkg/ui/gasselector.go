package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/units"
)

// GasSelectorModel is the fuzzy gas picker overlay
type GasSelectorModel struct {
	allItems      []GasItem
	filteredItems []GasItem

	searchInput   textinput.Model
	selectedIndex int
	currentID     string

	width  int
	height int
	theme  Theme

	confirmed    bool
	cancelled    bool
	selectedItem *GasItem
}

// NewGasSelectorModel creates a selector over the catalog, with the cursor on currentID.
func NewGasSelectorModel(catalog *model.Catalog, currentID string, theme Theme) GasSelectorModel {
	ti := textinput.New()
	ti.Placeholder = "Search gases by name or formula..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	gases := catalog.Gases()
	items := make([]GasItem, 0, len(gases))
	for _, g := range gases {
		items = append(items, GasItem{Gas: g})
	}

	m := GasSelectorModel{
		allItems:      items,
		filteredItems: items,
		searchInput:   ti,
		currentID:     currentID,
		theme:         theme,
		width:         60,
		height:        20,
	}
	m.selectedIndex = m.indexOf(currentID)
	return m
}

func (m *GasSelectorModel) indexOf(id string) int {
	for i, it := range m.filteredItems {
		if it.Gas.ID == id {
			return i
		}
	}
	return 0
}

// SetSize updates the selector dimensions
func (m *GasSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 50 {
		inputWidth = 50
	}
	m.searchInput.Width = inputWidth
}

// Update handles a key press. Everything that is not navigation goes to the
// search field.
func (m *GasSelectorModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "ctrl+p", "shift+tab":
		m.moveUp()
		return nil
	case "down", "ctrl+n", "tab":
		m.moveDown()
		return nil
	case "enter":
		if len(m.filteredItems) > 0 && m.selectedIndex < len(m.filteredItems) {
			item := m.filteredItems[m.selectedIndex]
			m.selectedItem = &item
			m.confirmed = true
		}
		return nil
	case "esc":
		m.confirmed = false
		m.cancelled = true
		m.selectedItem = nil
		return nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.filterItems()
	}
	return cmd
}

// SetQuery replaces the search text and refilters
func (m *GasSelectorModel) SetQuery(value string) {
	m.searchInput.SetValue(value)
	m.filterItems()
}

func (m *GasSelectorModel) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
}

func (m *GasSelectorModel) moveDown() {
	if m.selectedIndex < len(m.filteredItems)-1 {
		m.selectedIndex++
	}
}

func (m *GasSelectorModel) filterItems() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filteredItems = m.allItems
		m.selectedIndex = m.indexOf(m.currentID)
		return
	}

	searchStrings := make([]string, len(m.allItems))
	for i, item := range m.allItems {
		searchStrings[i] = item.FilterValue()
	}

	matches := fuzzy.Find(query, searchStrings)

	m.filteredItems = make([]GasItem, 0, len(matches))
	for _, match := range matches {
		m.filteredItems = append(m.filteredItems, m.allItems[match.Index])
	}
	m.selectedIndex = 0
}

// IsConfirmed returns true if user confirmed a selection
func (m *GasSelectorModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled returns true if user dismissed the selector
func (m *GasSelectorModel) IsCancelled() bool {
	return m.cancelled
}

// SelectedItem returns the selected gas, or nil if none
func (m *GasSelectorModel) SelectedItem() *GasItem {
	return m.selectedItem
}

// ItemCount returns the number of filtered items
func (m *GasSelectorModel) ItemCount() int {
	return len(m.filteredItems)
}

// Highlighted returns the gas under the cursor
func (m *GasSelectorModel) Highlighted() (model.Gas, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.filteredItems) {
		return model.Gas{}, false
	}
	return m.filteredItems[m.selectedIndex].Gas, true
}

// View renders the selector box centred in the viewport
func (m *GasSelectorModel) View() string {
	t := m.theme

	boxWidth := 62
	if m.width < 72 {
		boxWidth = m.width - 10
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	contentWidth := boxWidth - 6

	var lines []string

	titleStyle := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true)
	lines = append(lines, titleStyle.Render("Select Gas"), "")

	inputStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1).
		Width(contentWidth - 2)
	lines = append(lines, inputStyle.Render(m.searchInput.View()), "")

	maxVisible := m.height - 12
	if maxVisible < 5 {
		maxVisible = 5
	}
	if maxVisible > 15 {
		maxVisible = 15
	}

	if len(m.filteredItems) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, emptyStyle.Render("  No matching gases"))
	} else {
		// Keep the cursor inside the visible window.
		start := 0
		if m.selectedIndex >= maxVisible {
			start = m.selectedIndex - maxVisible + 1
		}
		end := start + maxVisible
		if end > len(m.filteredItems) {
			end = len(m.filteredItems)
		}
		for i := start; i < end; i++ {
			lines = append(lines, m.renderItem(m.filteredItems[i], i == m.selectedIndex, contentWidth))
		}
		if hidden := len(m.filteredItems) - (end - start); hidden > 0 {
			moreStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
			lines = append(lines, moreStyle.Render("  ... and "+strconv.Itoa(hidden)+" more"))
		}
	}

	lines = append(lines, "")
	footerStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
	lines = append(lines, footerStyle.Render("↑/↓: navigate • enter: select • esc: cancel"))

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(strings.Join(lines, "\n")))
}

func (m *GasSelectorModel) renderItem(item GasItem, isSelected bool, maxWidth int) string {
	t := m.theme

	prefix := "  "
	if isSelected {
		prefix = "▸ "
	}

	nameStyle := t.Renderer.NewStyle().Foreground(t.Text)
	if isSelected {
		nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
	}

	current := ""
	if item.Gas.ID == m.currentID {
		current = " " + GlyphDot
	}

	limits := units.FormatLimit(item.Gas.LEL) + "–" + units.FormatLimit(item.Gas.UEL)
	formula := ""
	if item.Gas.HasFormula() {
		formula = item.Gas.Formula
	}

	nameWidth := maxWidth - 2 - 2 - 10 - 14
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := PadRight(Truncate(item.Gas.DisplayName()+current, nameWidth), nameWidth)

	return prefix + RenderGasSwatch(item.Gas.Color, t) + " " +
		nameStyle.Render(name) +
		t.Renderer.NewStyle().Foreground(t.Subtext).Render(PadRight(formula, 10)) +
		t.Renderer.NewStyle().Foreground(t.Muted).Render(limits)
}
