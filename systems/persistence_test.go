package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps items in memory in place of gdata.
type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	m := &memStore{items: map[string][]byte{}}
	prev := store
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemStore(t)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing saved yet")

	SaveCurrentSettings(&components.SettingsData{Hitboxes: true, ScaleIndex: 3})
	saved, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &SavedSettings{Hitboxes: true, ScaleIndex: 3}, saved)
}

func TestSettingsCorruptData(t *testing.T) {
	m := useMemStore(t)
	m.items[settingsKey] = []byte("{not json")

	saved, err := LoadSettings()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestPersistenceWithoutStore(t *testing.T) {
	prev := store
	store = nil
	t.Cleanup(func() { store = prev })

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveLeaderboard("maze", core.Leaderboard{}))
	assert.Empty(t, LoadLeaderboard("maze").Entries)
}

func TestLeaderboardPerVariant(t *testing.T) {
	m := useMemStore(t)

	board := core.Leaderboard{}
	board.Add(core.Record{Name: "ada", Time: 3 * time.Second, Levels: 2})
	require.NoError(t, SaveLeaderboard("maze", board))

	assert.Equal(t, board, LoadLeaderboard("maze"))
	assert.Empty(t, LoadLeaderboard("arena").Entries)

	m.err = errors.New("disk gone")
	assert.Empty(t, LoadLeaderboard("maze").Entries, "load errors fall back to an empty board")
	assert.Error(t, SaveLeaderboard("maze", board))
}

func TestSubmitRecord(t *testing.T) {
	useMemStore(t)

	g := &components.GameOverData{Result: components.RunResult{
		Game:     "maze",
		Finished: true,
		Total:    2,
		Record:   core.Record{Time: 5 * time.Second, Levels: 2},
	}}
	g.Board.Add(core.Record{Name: "old", Time: 9 * time.Second, Levels: 2})
	require.True(t, QualifiesForBoard(g))

	assert.Equal(t, 1, SubmitRecord(g, "new"))
	assert.Equal(t, "new", g.Board.Entries[0].Name)
	assert.Equal(t, g.Board, LoadLeaderboard("maze"), "board is saved")
}

func TestQualifiesForBoard(t *testing.T) {
	full := components.RunResult{Finished: true, Total: 2, Record: core.Record{Time: time.Second, Levels: 2}}

	assert.True(t, QualifiesForBoard(&components.GameOverData{Result: full}))

	partial := full
	partial.Record.Levels = 1
	assert.False(t, QualifiesForBoard(&components.GameOverData{Result: partial}), "quit early")

	died := full
	died.Finished = false
	assert.False(t, QualifiesForBoard(&components.GameOverData{Result: died}))

	slow := &components.GameOverData{Result: full}
	for range core.LeaderboardSize {
		slow.Board.Add(core.Record{Name: "x", Time: time.Millisecond})
	}
	assert.False(t, QualifiesForBoard(slow))
}

func TestBestTime(t *testing.T) {
	assert.Empty(t, bestTime(core.Leaderboard{}))
	board := core.Leaderboard{}
	board.Add(core.Record{Name: "ada", Time: 1500 * time.Millisecond})
	assert.Equal(t, "Best maze: ada 1:500", bestTime(board))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Maze", optionLabel("maze"))
	assert.Equal(t, "Exit", optionLabel(menuExit))
	assert.Empty(t, optionLabel(""))
}
