package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/lelscale/pkg/units"
)

// ConcentrationInputModel provides a modal for typing an exact concentration
type ConcentrationInputModel struct {
	input   textinput.Model
	gasName string
	width   int
	height  int
	theme   Theme

	// Result
	submitted bool
	cancelled bool
	value     float64
	err       error
}

// NewConcentrationInputModel creates a new input modal
func NewConcentrationInputModel(gasName string, theme Theme) ConcentrationInputModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 2.5%, 2.5 vol, 5000 ppm"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 30

	return ConcentrationInputModel{
		input:   ti,
		gasName: gasName,
		theme:   theme,
	}
}

// Init implements tea.Model
func (m ConcentrationInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Enter parses the input; a parse error keeps
// the modal open and is shown under the field.
func (m ConcentrationInputModel) Update(msg tea.Msg) (ConcentrationInputModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "enter":
			v, err := units.ParseConcentration(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.submitted = true
			m.value = v
			m.err = nil
			return m, nil
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ConcentrationInputModel) View() string {
	var b strings.Builder

	width := 50
	if m.width > 0 && m.width < 60 {
		width = m.width - 10
	}

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		Width(width).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render("Set concentration for " + m.gasName))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.theme.Renderer.NewStyle().Foreground(m.theme.LEL).Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	b.WriteString(hintStyle.Render("[Enter] Apply  [Esc] Cancel  (values above the range are clamped)"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(width)

	box := boxStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize sets the modal dimensions
func (m *ConcentrationInputModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := width - 20
	if w < 20 {
		w = 20
	}
	if w > 40 {
		w = 40
	}
	m.input.Width = w
}

// IsSubmitted returns true if the user entered a valid value
func (m ConcentrationInputModel) IsSubmitted() bool {
	return m.submitted
}

// IsCancelled returns true if the user cancelled
func (m ConcentrationInputModel) IsCancelled() bool {
	return m.cancelled
}

// Value returns the entered concentration in percent by volume
func (m ConcentrationInputModel) Value() float64 {
	return m.value
}

// Err returns the last parse error
func (m ConcentrationInputModel) Err() error {
	return m.err
}
