package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func run(score int) core.RunSummary {
	return core.RunSummary{Score: score, Level: 1 + score/500, WeaponTier: 1, Kills: score / 10, Ticks: 600}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		_, err := store.SaveRun("shooter", run(s))
		require.NoError(t, err)
	}
	_, err := store.SaveRun("other", run(500))
	require.NoError(t, err)

	runs, err := store.TopRuns("shooter", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
	assert.Equal(t, 50, runs[2].Score)
	assert.Equal(t, "shooter", runs[0].GameID)
	assert.Equal(t, 20, runs[0].Kills)
	assert.Equal(t, uint64(600), runs[0].Ticks)
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveRun("shooter", run((i+1)*100))
		require.NoError(t, err)
	}

	runs, err := store.TopRuns("shooter", 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{runs[0].Score, runs[1].Score, runs[2].Score})
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{300, 100, 200} {
		_, err := store.SaveRun("shooter", run(s))
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns("shooter", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveRun("shooter", run(s))
		require.NoError(t, err)
	}

	high, err = store.HighScore("shooter")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("shooter", run(100)) //nolint:errcheck
	store.SaveRun("shooter", run(200)) //nolint:errcheck
	store.SaveRun("other", run(300))   //nolint:errcheck

	require.NoError(t, store.ClearRuns("shooter"))

	runs, err := store.TopRuns("shooter", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	others, err := store.TopRuns("other", 10)
	require.NoError(t, err)
	assert.Len(t, others, 1, "other games should not be affected")
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("shooter")
	require.NoError(t, err)
	assert.Zero(t, empty.Runs)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveRun("shooter", run(100))  //nolint:errcheck
	store.SaveRun("shooter", run(1100)) //nolint:errcheck

	stats, err := store.Stats("shooter")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 1100, stats.HighScore)
	assert.InDelta(t, 600.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(120), stats.TotalKills)
	assert.Equal(t, 3, stats.BestLevel)
	assert.False(t, stats.LastPlayed.IsZero())
}
