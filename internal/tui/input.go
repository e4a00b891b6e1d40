package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-line text prompt with an optional suggested value
// used when the user submits an empty input.
type inputModel struct {
	title      string
	suggestion string
	input      textinput.Model
	done       bool
	cancelled  bool
}

func newInputModel(title, suggestion string) inputModel {
	ti := textinput.New()
	ti.Placeholder = suggestion
	ti.Focus()
	return inputModel{title: title, suggestion: suggestion, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	out := titleStyle.Render(m.title) + "\n\n" + m.input.View() + "\n\n"
	out += helpStyle.Render("enter: confirm │ esc: cancel")
	return out + "\n"
}

// value returns the entered text, falling back to the suggestion on empty
// input.
func (m inputModel) value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.suggestion
	}
	return v
}

func promptText(title, suggestion string) (string, error) {
	final, err := tea.NewProgram(newInputModel(title, suggestion)).Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(inputModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrCancelled
	}
	return result.value(), nil
}
