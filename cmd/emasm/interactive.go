package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/emasm/asm"
	"github.com/wippyai/emasm/easm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEdit modelState = iota
	stateShowResult
)

type interactiveModel struct {
	err    error
	source textarea.Model
	output viewport.Model
	state  modelState
	width  int
	height int
}

type assembledMsg struct {
	err    error
	code   []byte
	layout *asm.Layout
}

func newInteractiveModel(initial string) *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "1 2 add 0 mstore 32 0 return"
	ta.SetValue(initial)
	ta.Focus()

	return &interactiveModel{
		source: ta,
		output: viewport.New(80, 20),
		state:  stateEdit,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) assemble() tea.Msg {
	elements, err := easm.Parse(m.source.Value())
	if err != nil {
		return assembledMsg{err: err}
	}
	layout, err := asm.Resolve(elements)
	if err != nil {
		return assembledMsg{err: err}
	}
	code, err := asm.Encode(elements, layout)
	if err != nil {
		return assembledMsg{err: err}
	}
	return assembledMsg{code: code, layout: layout}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.source.SetWidth(msg.Width - 4)
		m.source.SetHeight(msg.Height - 6)
		m.output.Width = msg.Width - 4
		m.output.Height = msg.Height - 6

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+s":
			if m.state == stateEdit {
				return m, m.assemble
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEdit
				m.err = nil
				m.source.Focus()
				return m, textarea.Blink
			}

		case "q":
			if m.state == stateShowResult {
				return m, tea.Quit
			}
		}

	case assembledMsg:
		m.err = msg.err
		if msg.err == nil {
			m.output.SetContent(renderResult(msg.code, msg.layout))
		}
		m.state = stateShowResult
		m.source.Blur()
	}

	var cmd tea.Cmd
	switch m.state {
	case stateEdit:
		m.source, cmd = m.source.Update(msg)
	case stateShowResult:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("emasm"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEdit:
		b.WriteString(m.source.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s assemble • ctrl+c quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.output.View())
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc edit • q quit"))
	}

	return b.String()
}

// renderResult formats bytecode as a 16-byte-per-row hex dump followed by
// the resolved offset table.
func renderResult(code []byte, layout *asm.Layout) string {
	var b strings.Builder

	b.WriteString(resultStyle.Render(fmt.Sprintf("%d bytes", len(code))))
	b.WriteString("\n\n")

	for row := 0; row < len(code); row += 16 {
		end := row + 16
		if end > len(code) {
			end = len(code)
		}
		b.WriteString(offsetStyle.Render(fmt.Sprintf("%04x", row)))
		b.WriteString("  ")
		for i := row; i < end; i++ {
			b.WriteString(fmt.Sprintf("%02x ", code[i]))
		}
		b.WriteString("\n")
	}

	if len(layout.Labels) > 0 || len(layout.Data) > 0 {
		b.WriteString("\n")
		var table strings.Builder
		printLayout(&table, layout)
		for _, line := range strings.Split(strings.TrimRight(table.String(), "\n"), "\n") {
			b.WriteString(labelStyle.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func runInteractive(path string) error {
	var initial string
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		initial = string(data)
	}

	p := tea.NewProgram(newInteractiveModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
