package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Open() failed")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "Open() with nested path failed")
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveScore("marbles", 100, 1)
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	assert.NoError(t, err, "run id should be a uuid")

	_, err = store.SaveScore("marbles", 50, 1)
	require.NoError(t, err)
	_, err = store.SaveScore("marbles", 200, 3)
	require.NoError(t, err)
	_, err = store.SaveScore("other", 500, 1)
	require.NoError(t, err)

	scores, err := store.TopScores("marbles", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, runID, scores[1].RunID)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore("marbles", (i+1)*100, 1)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("marbles", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty game should have no high score")

	store.SaveScore("marbles", 100, 1)
	store.SaveScore("marbles", 300, 2)

	high, err = store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 300, high)

	// A live high score beyond any finished run wins.
	require.NoError(t, store.SetHighScore("marbles", 450))
	high, err = store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 450, high)
}

func TestStoreSetHighScoreIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetHighScore("marbles", 500))
	require.NoError(t, store.SetHighScore("marbles", 200))

	high, err := store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 500, high, "lower score must not replace the high score")

	require.NoError(t, store.SetHighScore("marbles", 650))
	high, err = store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 650, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("marbles", 100, 1)
	store.SetHighScore("marbles", 150)
	store.SaveScore("other", 300, 1)

	require.NoError(t, store.ClearScores("marbles"))

	scores, err := store.TopScores("marbles", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	high, err := store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1, "other games should not be affected")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("marbles")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	store.SaveScore("marbles", 100, 1)
	store.SaveScore("marbles", 300, 4)

	stats, err = store.GetGameStats("marbles")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 4, stats.BestLevel)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestHighScoreKeeper(t *testing.T) {
	store := openTestStore(t)
	keeper := store.HighScoreKeeper("marbles")

	score, err := keeper.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, keeper.SaveHighScore(250))
	score, err = keeper.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 250, score)

	other, err := store.HighScoreKeeper("other").LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, other, "keepers are scoped by game id")

	var nilKeeper *HighScoreKeeper
	_, err = nilKeeper.LoadHighScore()
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, nilKeeper.SaveHighScore(1), ErrNoStore)
}

func TestStoreSchemaVersion(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("marbles", 120, 2)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	scores, err := store.TopScores("marbles", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 120, scores[0].Score)
}

func TestStoreMigratesLegacyScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(migrations[0])
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO scores (game_id, score) VALUES ('marbles', 700)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	scores, err := store.TopScores("marbles", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "legacy-1", scores[0].RunID)
	assert.Equal(t, 1, scores[0].Level)
	assert.Equal(t, 700, scores[0].Score)

	best, err := store.HighScore("marbles")
	require.NoError(t, err)
	assert.Equal(t, 700, best)
}
