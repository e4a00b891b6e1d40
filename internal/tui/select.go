package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a minimal cursor-driven pick list. It runs as its own
// tea.Program; the final model carries the chosen index or the cancelled
// marker.
type selectModel struct {
	title     string
	items     []string
	idx       int
	done      bool
	cancelled bool
}

func newSelectModel(title string, items []string) selectModel {
	return selectModel{title: title, items: items}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, item))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select │ ↑/↓: move │ q: cancel"))
	b.WriteString("\n")
	return b.String()
}

// selectFromList shows the items and returns the chosen index.
// Returns ErrCancelled when the user quits, or an error for an empty list.
func selectFromList(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("no items available")
	}

	final, err := tea.NewProgram(newSelectModel(title, items)).Run()
	if err != nil {
		return 0, err
	}

	result, ok := final.(selectModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.cancelled {
		return 0, ErrCancelled
	}
	return result.idx, nil
}
