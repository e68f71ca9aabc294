// SPDX-License-Identifier: MIT
// Package tui is a bubbletea front-end for the analyzer menu.
//
// It walks the same command table as the console session: pick a command,
// answer its prompts in a text input, read the rendered result.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/netanalyzer/network"
	"github.com/katalvlaran/netanalyzer/session"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	outputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type state int

const (
	menuState state = iota
	promptState
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Enter}, {k.Cancel, k.Quit}}
}

// Model is the bubbletea model of the analyzer menu.
type Model struct {
	disp    *session.Dispatcher
	summary func() network.Summary

	state   state
	cursor  int
	cmd     session.Command
	prompts []string
	answers []string
	input   textinput.Model

	output  string
	failed  bool
	done    bool
	width   int
	help    help.Model
	keys    keyMap
	title   string
	entries []session.Command
}

// New creates a Model. summary is called on every render for the live
// vertex and edge totals.
func New(d *session.Dispatcher, summary func() network.Summary, title string) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		disp:    d,
		summary: summary,
		input:   ti,
		help:    help.New(),
		keys:    keys,
		title:   title,
		entries: session.Commands(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == promptState {
			return m.updatePrompt(msg)
		}
		return m.updateMenu(msg)
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		return m.choose(m.entries[m.cursor])
	default:
		if c, err := session.ParseCommand(msg.String()); err == nil {
			m.cursor = int(c) - 1
			return m.choose(c)
		}
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.answers = append(m.answers, m.input.Value())
		m.input.SetValue("")
		if len(m.answers) < len(m.prompts) {
			return m, nil
		}
		return m.execute()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// choose starts c: commands without prompts run at once.
func (m Model) choose(c session.Command) (tea.Model, tea.Cmd) {
	a, ok := m.disp.Action(c)
	if !ok {
		return m, nil
	}
	m.cmd = c
	m.prompts = a.Prompts
	m.answers = nil
	if len(a.Prompts) == 0 {
		return m.execute()
	}
	m.state = promptState
	cmd := m.input.Focus()

	return m, cmd
}

func (m Model) execute() (tea.Model, tea.Cmd) {
	var buf bytes.Buffer
	err := m.disp.Execute(m.cmd, m.answers, &buf)
	m.output = strings.TrimRight(buf.String(), "\n")
	m.failed = err != nil
	if err != nil {
		m.output = err.Error()
	}
	if m.cmd == session.Exit {
		m.done = true
		return m, tea.Quit
	}
	m.reset()

	return m, nil
}

func (m *Model) reset() {
	m.state = menuState
	m.prompts = nil
	m.answers = nil
	m.input.SetValue("")
	m.input.Blur()
}

// Output returns the text of the last executed command.
func (m Model) Output() string { return m.output }

// Done reports whether the user quit.
func (m Model) Done() bool { return m.done }

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	if m.summary != nil {
		sum := m.summary()
		s.WriteString(statsStyle.Render(fmt.Sprintf("%d vertices, %d edges", sum.Vertices, sum.Edges)))
		s.WriteString("\n")
	}

	var menu strings.Builder
	for i, c := range m.entries {
		line := fmt.Sprintf("%d. %s", int(c), c)
		if i == m.cursor {
			menu.WriteString(cursorStyle.Render("> " + line))
		} else {
			menu.WriteString(itemStyle.Render("  " + line))
		}
		menu.WriteString("\n")
	}
	s.WriteString(contentStyle.Render(menu.String()))
	s.WriteString("\n")

	if m.state == promptState {
		s.WriteString(contentStyle.Render(m.prompts[len(m.answers)] + m.input.View()))
		s.WriteString("\n")
	}

	if m.output != "" {
		if m.failed {
			s.WriteString(contentStyle.Render(errorStyle.Render(m.output)))
		} else {
			s.WriteString(outputStyle.Render(m.output))
		}
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

// Run starts the program on the given terminal streams and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()

	return err
}
