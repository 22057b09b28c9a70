package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/layout"
	"github.com/wippyai/randstruct/structdef"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	bitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectStruct modelState = iota
	stateViewLayout
)

type interactiveModel struct {
	err      error
	defs     *structdef.File
	seed     textinput.Model
	order    []randstruct.Field
	selected int
	state    modelState
}

func runInteractive(defs *structdef.File, seed string) error {
	if len(defs.Structs) == 0 {
		return fmt.Errorf("no structs defined")
	}

	input := textinput.New()
	input.Placeholder = "seed"
	input.SetValue(seed)
	input.CharLimit = 64
	input.Width = 32

	m := interactiveModel{defs: defs, seed: input}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd {
	return nil
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelectStruct:
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.defs.Structs)-1 {
				m.selected++
			}
		case "enter":
			m.state = stateViewLayout
			m.seed.Focus()
			m.rerun()
		}

	case stateViewLayout:
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateSelectStruct
			m.seed.Blur()
			m.err = nil
		case "enter":
			m.rerun()
		default:
			var cmd tea.Cmd
			m.seed, cmd = m.seed.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *interactiveModel) rerun() {
	s := m.defs.Structs[m.selected]
	cfg := randstruct.Config{Seed: m.seed.Value()}
	order, err := layout.Rearrange(s.FieldList(), structdef.Widths{}, cfg)
	if err != nil {
		m.err = err
		m.order = nil
		return
	}
	m.err = nil
	m.order = order
}

func (m interactiveModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateSelectStruct:
		b.WriteString(titleStyle.Render("randstruct"))
		b.WriteString("\n\n")
		for i, s := range m.defs.Structs {
			line := fmt.Sprintf("%s (%d fields)", s.Name, len(s.Fields))
			if i == m.selected {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(helpStyle.Render("\n↑/↓ select · enter view · q quit\n"))

	case stateViewLayout:
		s := m.defs.Structs[m.selected]
		b.WriteString(titleStyle.Render("struct " + s.Name))
		b.WriteString("\n\nseed: ")
		b.WriteString(m.seed.View())
		b.WriteString("\n\n")

		if m.err != nil {
			b.WriteString(errStyle.Render(m.err.Error()))
			b.WriteByte('\n')
		} else {
			declared := s.FieldList()
			b.WriteString(fieldStyle.Render("declared"))
			b.WriteString(strings.Repeat(" ", 16))
			b.WriteString(fieldStyle.Render("randomized"))
			b.WriteByte('\n')
			for i := range m.order {
				b.WriteString(fmt.Sprintf("%-24s%s\n",
					plainLabel(declared[i]), styledLabel(m.order[i])))
			}
		}
		b.WriteString(helpStyle.Render("\nenter re-randomize · esc back · ctrl+c quit\n"))
	}

	return b.String()
}

func plainLabel(f randstruct.Field) string {
	m := f.(*structdef.Member)
	if m.IsBitfield() {
		return fmt.Sprintf("%s : %d", m.Name, m.Bits)
	}
	return m.Name
}

func styledLabel(f randstruct.Field) string {
	m := f.(*structdef.Member)
	if m.IsBitfield() {
		return bitStyle.Render(fmt.Sprintf("%s : %d", m.Name, m.Bits))
	}
	return m.Name
}
