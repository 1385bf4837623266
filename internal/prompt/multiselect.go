package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// selectModel is the bubbletea model behind MultiSelect: a cursor over
// a fixed option list with per-row checkboxes.
type selectModel struct {
	title   string
	options []string
	cursor  int
	checked map[int]bool
	done    bool
	aborted bool
}

func newSelectModel(title string, options []string) selectModel {
	return selectModel{
		title:   title,
		options: options,
		checked: make(map[int]bool),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ":
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "a":
		for i := range m.options {
			m.checked[i] = true
		}
	case "n":
		for i := range m.options {
			delete(m.checked, i)
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	s := titleStyle.Render(m.title) + "\n"
	s += helpStyle.Render("space: toggle • a: all • n: none • enter: confirm • q: abort") + "\n\n"

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.checked[i] {
			box = checkedStyle.Render("[x]")
		}
		s += fmt.Sprintf("%s%s %s\n", cursor, box, opt)
	}
	return s
}

// MultiSelect shows a checkbox list and returns the indexes of the
// chosen options, in option order. An aborted prompt returns an empty
// selection, which callers treat as "nothing selected".
func MultiSelect(title string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newSelectModel(title, options)).Run()
	if err != nil {
		return nil, fmt.Errorf("selection prompt failed: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok || m.aborted {
		return nil, nil
	}

	var picked []int
	for i := range m.options {
		if m.checked[i] {
			picked = append(picked, i)
		}
	}
	return picked, nil
}
