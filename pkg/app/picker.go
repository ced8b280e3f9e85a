// Package app holds the bubbletea front-end used by the browse command: a
// catalog picker with manual entry and a multi-select over image search
// results. The plain prompt flow in cmd stays the default.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/nebulae/pkg/app/styles"
)

type pickerModel struct {
	entries []string
	cursor  int
	input   textinput.Model
	manual  bool
	choice  string
}

func newPickerModel(entries []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Nebula name..."
	ti.CharLimit = 100
	ti.Width = 40

	return pickerModel{entries: entries, input: ti}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

// rows is the catalog plus the trailing manual-entry row.
func (m pickerModel) rows() int {
	return len(m.entries) + 1
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.manual {
			switch msg.String() {
			case "enter":
				if v := strings.TrimSpace(m.input.Value()); v != "" {
					m.choice = v
					return m, tea.Quit
				}
			case "esc":
				m.manual = false
				m.input.Blur()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = m.rows() - 1
			}
		case "down", "j":
			m.cursor++
			if m.cursor >= m.rows() {
				m.cursor = 0
			}
		case "enter":
			if m.cursor < len(m.entries) {
				m.choice = m.entries[m.cursor]
				return m, tea.Quit
			}
			m.manual = true
			m.input.Focus()
			return m, textinput.Blink
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📚 Nebula catalog"))
	b.WriteString("\n")

	if m.manual {
		b.WriteString(styles.SubtitleStyle.Render("Search by name"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("enter: search • esc: back"))
		return b.String()
	}

	for i, entry := range m.entries {
		line := fmt.Sprintf("  %2d. %s", i+1, entry)
		if i == m.cursor {
			line = styles.SelectedStyle.Render("▸" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	manual := "   0. Search by another name"
	if m.cursor == len(m.entries) {
		manual = styles.SelectedStyle.Render("▸" + manual[1:])
	}
	b.WriteString(manual + "\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓: move • enter: choose • q: quit"))

	return b.String()
}

// PickNebula runs the catalog picker and returns the chosen name. An empty
// string means the user backed out.
func PickNebula(entries []string) (string, error) {
	final, err := tea.NewProgram(newPickerModel(entries)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(pickerModel)
	if !ok {
		return "", nil
	}
	return m.choice, nil
}
