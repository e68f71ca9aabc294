package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/builder"
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/network"
	"github.com/katalvlaran/netanalyzer/session"
	"github.com/katalvlaran/netanalyzer/tui"
)

func newModel(t *testing.T) tui.Model {
	t.Helper()
	g, _, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolNames(), builder.WithAffiliations("North")},
		builder.Star(4),
	)
	require.NoError(t, err)
	n, err := network.New(g)
	require.NoError(t, err)

	return tui.New(session.NewDispatcher(n, entity.AttrAffiliation), n.Summary, "netanalyzer")
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(tui.Model)
	}

	return m, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestConnectorsWithoutPrompt(t *testing.T) {
	m, _ := send(t, newModel(t), runes("6"))
	assert.Equal(t, "The connectors in the graph are as follows:\nA from North", m.Output())
}

func TestPromptedCommand(t *testing.T) {
	m, _ := send(t, newModel(t), runes("3"))
	assert.Contains(t, m.View(), "Enter node's name: ")

	m, _ = send(t, m, runes("a"), enter)
	assert.Equal(t, "Connection count for A: 3\nConnections of A are:\nB\nC\nD", m.Output())
	assert.NotContains(t, m.View(), "Enter node's name: ")
}

func TestTwoPrompts(t *testing.T) {
	m, _ := send(t, newModel(t), runes("1"), runes("A"), enter, runes("B"), enter)
	assert.True(t, strings.HasPrefix(m.Output(), "The edge between the nodes A and B has been successfully removed.."))
	assert.Contains(t, m.View(), "4 vertices, 2 edges")
}

func TestCursorAndCancel(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ := send(t, newModel(t), down, down, down, down, enter)
	assert.Contains(t, m.View(), "Enter node's name: ", "fifth entry is closeness")

	m, _ = send(t, m, esc)
	assert.NotContains(t, m.View(), "Enter node's name: ")
	assert.Empty(t, m.Output())
}

func TestExitQuits(t *testing.T) {
	m, cmd := send(t, newModel(t), runes("7"))
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Equal(t, "Exiting from the program.", m.Output())

	m, cmd = send(t, newModel(t), runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
}
