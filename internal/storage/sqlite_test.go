package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Check that the file was created
	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreHighScoreRoundTrip(t *testing.T) {
	store := openTemp(t)

	// No score yet
	high, err := store.HighScore(LocalProfile)
	require.NoError(t, err)
	require.Equal(t, 0, high)

	require.NoError(t, store.SaveHighScore(LocalProfile, 12))
	high, err = store.HighScore(LocalProfile)
	require.NoError(t, err)
	require.Equal(t, 12, high)

	require.NoError(t, store.SaveHighScore(LocalProfile, 30))
	high, err = store.HighScore(LocalProfile)
	require.NoError(t, err)
	require.Equal(t, 30, high)
}

func TestStoreNeverLowersScore(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.SaveHighScore("alice", 40))
	require.NoError(t, store.SaveHighScore("alice", 15))

	high, err := store.HighScore("alice")
	require.NoError(t, err)
	require.Equal(t, 40, high)
}

func TestStoreProfilesAreIndependent(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.SaveHighScore("alice", 40))
	require.NoError(t, store.SaveHighScore("bob", 9))

	alice, err := store.HighScore("alice")
	require.NoError(t, err)
	bob, err := store.HighScore("bob")
	require.NoError(t, err)
	require.Equal(t, 40, alice)
	require.Equal(t, 9, bob)

	require.NoError(t, store.ClearHighScore("alice"))
	alice, err = store.HighScore("alice")
	require.NoError(t, err)
	require.Equal(t, 0, alice)
}

func TestStoreInvalidValuesReadAsZero(t *testing.T) {
	store := openTemp(t)

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"text", "not a number", 0},
		{"negative", -25, 0},
		{"numeric text", "17", 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.db.Exec(
				"INSERT OR REPLACE INTO high_scores (profile, score) VALUES (?, ?)",
				"corrupt", tc.raw,
			)
			require.NoError(t, err)

			high, err := store.HighScore("corrupt")
			require.NoError(t, err)
			require.Equal(t, tc.want, high)
		})
	}
}

func TestStoreNegativeSaveClamped(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.SaveHighScore(LocalProfile, -3))
	high, err := store.HighScore(LocalProfile)
	require.NoError(t, err)
	require.Equal(t, 0, high)
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)

	for i, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, store.SaveHighScore(name, (i+1)*100))
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be 500, 400, 300 (top 3)
	require.Equal(t, "e", scores[0].Profile)
	require.Equal(t, 500, scores[0].Score)
	require.Equal(t, 400, scores[1].Score)
	require.Equal(t, 300, scores[2].Score)
	require.False(t, scores[0].UpdatedAt.IsZero())
}

func TestProfileAdapter(t *testing.T) {
	store := openTemp(t)
	logger := log.New(io.Discard)

	p := NewProfile(store, "", logger)
	require.Equal(t, LocalProfile, p.Name())
	require.Equal(t, 0, p.LoadHighScore())

	p.SaveHighScore(21)
	require.Equal(t, 21, p.LoadHighScore())

	// A closed database logs and reads as 0 instead of failing.
	require.NoError(t, store.Close())
	require.Equal(t, 0, p.LoadHighScore())
	p.SaveHighScore(50)
}

func TestProfileWithoutStore(t *testing.T) {
	p := NewProfile(nil, "guest", log.New(io.Discard))
	require.Equal(t, 0, p.LoadHighScore())
	p.SaveHighScore(10)
	require.Equal(t, 0, p.LoadHighScore())
}
