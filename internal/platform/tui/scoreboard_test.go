package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestScoreboardModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: "breakout", Player: "alice", Score: 1200, Level: 2},
		{GameID: "breakout", Player: "", Score: 400, Level: 1},
		{GameID: "breakout_endless", Player: "bob", Score: 50, Level: 1},
	} {
		_, err := store.SaveEntry(e)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	require.GreaterOrEqual(t, len(m.modes), 2)
	assert.Equal(t, "breakout", m.modes[0].ID)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "1,200")
	assert.Contains(t, view, "2 games")
	assert.Contains(t, view, "best 1,200 by alice")
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, "-", m.table.Rows()[1][1])

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.mode)
	assert.Len(t, m.scores, 1)
	assert.Equal(t, "bob", m.scores[0].Player)

	// Wraps backwards to the last mode
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.modes)-1, m.mode)
}

func TestScoreboardEmptyAndExit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	assert.Contains(t, ansi.Strip(m.View()), "not being saved")

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	quit := update(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
}

func TestScoreRowsFormatting(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Player: "carol", Score: 98765, Level: 0}})
	require.Len(t, rows, 1)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "carol", rows[0][1])
	assert.Equal(t, "98,765", rows[0][2])
	assert.Equal(t, "-", rows[0][3])
}
