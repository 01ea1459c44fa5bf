package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, gameID, player string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		_, err := s.SaveEntry(ScoreEntry{GameID: gameID, Player: player, Score: sc})
		require.NoError(t, err)
	}
}

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestOpenCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.breakout/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".breakout", "scores.db"), got)

	got, err = expandHome("/tmp/~x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/~x.db", got)
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "breakout", "", 100, 50, 200, 300, 250)
	save(t, s, "breakout_endless", "", 999)

	top, err := s.TopScores("breakout", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{300, 250, 200}, scoresOf(top))

	all, err := s.AllScores("breakout")
	require.NoError(t, err)
	assert.Equal(t, []int{300, 250, 200, 100, 50}, scoresOf(all))

	def, err := s.TopScores("breakout", 0)
	require.NoError(t, err)
	assert.Len(t, def, 5)
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "breakout", "first", 100)
	save(t, s, "breakout", "second", 100)

	top, err := s.TopScores("breakout", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "first", top[0].Player)
	assert.Equal(t, "second", top[1].Player)
}

func TestSaveEntryRoundTrip(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveEntry(ScoreEntry{GameID: "breakout", Player: "alice", Score: 420, Level: 3})
	require.NoError(t, err)
	assert.Positive(t, id)

	top, err := s.TopScores("breakout", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	got := top[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.Player)
	assert.Equal(t, 420, got.Score)
	assert.Equal(t, 3, got.Level)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestPlayerScores(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "breakout", "alice", 10, 30)
	save(t, s, "breakout", "bob", 20)
	save(t, s, "breakout_endless", "alice", 99)

	got, err := s.PlayerScores("breakout", "alice", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10}, scoresOf(got))
}

func TestHighScoreAndStats(t *testing.T) {
	s := openTestStore(t)

	high, err := s.HighScore("breakout")
	require.NoError(t, err)
	assert.Zero(t, high)

	st, err := s.Stats("breakout")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	save(t, s, "breakout", "alice", 100, 300)
	save(t, s, "breakout", "", 200)

	high, err = s.HighScore("breakout")
	require.NoError(t, err)
	assert.Equal(t, 300, high)

	st, err = s.Stats("breakout")
	require.NoError(t, err)
	assert.Equal(t, 3, st.Games)
	assert.Equal(t, 300, st.Best)
	assert.InDelta(t, 200.0, st.Average, 1e-9)
	assert.Equal(t, 1, st.Players)
}

func TestClearScoresOnlyTouchesMode(t *testing.T) {
	s := openTestStore(t)
	save(t, s, "breakout", "", 100, 200)
	save(t, s, "breakout_endless", "", 300)

	require.NoError(t, s.ClearScores("breakout"))

	campaign, err := s.AllScores("breakout")
	require.NoError(t, err)
	assert.Empty(t, campaign)

	endless, err := s.AllScores("breakout_endless")
	require.NoError(t, err)
	assert.Len(t, endless, 1)
}

func TestReopenKeepsDataAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	require.NoError(t, err)
	save(t, store, "breakout", "", 10)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.EqualValues(t, 2, version)

	high, err := store.HighScore("breakout")
	require.NoError(t, err)
	assert.Equal(t, 10, high)
}
