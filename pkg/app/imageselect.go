package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/nebulae/pkg/app/styles"
	"github.com/kerbaras/nebulae/pkg/data"
)

type selectModel struct {
	cands   []data.ImageCandidate
	cursor  int
	checked map[int]bool
	done    bool
}

func newSelectModel(cands []data.ImageCandidate) selectModel {
	return selectModel{cands: cands, checked: map[int]bool{}}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.cands) - 1
			}
		case "down", "j":
			m.cursor++
			if m.cursor >= len(m.cands) {
				m.cursor = 0
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "enter":
			m.done = true
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🖼  Search results"))
	b.WriteString("\n")

	for i, cand := range m.cands {
		mark := "[ ]"
		if m.checked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, cand.Title)
		if i == m.cursor {
			line = styles.SelectedStyle.Render("▸" + line[1:])
		}
		b.WriteString(line + "\n")
		b.WriteString(styles.MutedStyle.Render("      "+cand.DateCreated) + "\n")
	}
	b.WriteString(styles.HelpStyle.Render("space: toggle • enter: download • q: cancel"))

	return b.String()
}

// SelectImages runs the multi-select over search results and returns the
// chosen 0-based indices in list order.
func SelectImages(cands []data.ImageCandidate) ([]int, error) {
	final, err := tea.NewProgram(newSelectModel(cands)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(selectModel)
	if !ok || !m.done {
		return nil, nil
	}
	var out []int
	for i := range m.cands {
		if m.checked[i] {
			out = append(out, i)
		}
	}
	return out, nil
}
