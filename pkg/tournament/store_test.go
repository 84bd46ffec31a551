package tournament

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/roundrobin/pkg/schedule"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "autumn-league-2024", Slug("  Autumn League (2024)! "))
	assert.Equal(t, "tournament", Slug("???"))
	assert.Equal(t, "week-2", Slug(Slug("Week 2")))
}

func TestStoreRoundTrip(t *testing.T) {
	store := &Store{Dir: filepath.Join(t.TempDir(), "nested", "tournaments")}

	tour, err := New("Autumn League", []string{"Lions", "Tigers", "Bears"})
	require.NoError(t, err)
	require.NoError(t, store.Save(tour))

	loaded, err := store.Load("autumn league")
	require.NoError(t, err)
	if diff := cmp.Diff(tour, loaded); diff != "" {
		t.Errorf("Load mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestStoreLoadDoesNotRegenerate(t *testing.T) {
	store := &Store{Dir: t.TempDir()}

	// A schedule that Generate would never produce for these teams.
	tour := &Tournament{
		Name:  "Custom",
		Teams: []string{"A", "B", "C", "D"},
		Schedule: schedule.Schedule{
			{Number: 1, Matches: []schedule.Match{{A: "D", B: "C"}}},
		},
	}
	require.NoError(t, store.Save(tour))

	loaded, err := store.Load("Custom")
	require.NoError(t, err)
	assert.Equal(t, tour.Schedule, loaded.Schedule)
}

func TestStoreFileFormat(t *testing.T) {
	store := &Store{Dir: t.TempDir()}

	tour, err := New("Cup", []string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, store.Save(tour))

	data, err := os.ReadFile(filepath.Join(store.Dir, "cup.yaml"))
	require.NoError(t, err)

	for _, field := range []string{"name: Cup", "teams:", "schedule:", "round: 1", "team1: A", "team2: B"} {
		assert.Contains(t, string(data), field)
	}
	assert.NotContains(t, string(data), "bye:")
}

func TestStoreMissing(t *testing.T) {
	store := &Store{Dir: t.TempDir()}

	_, err := store.Load("nothing")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.Remove("nothing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreListAndRemove(t *testing.T) {
	store := &Store{Dir: t.TempDir()}

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"Week 10", "Week 2", "Cup"} {
		tour, err := New(name, []string{"A", "B"})
		require.NoError(t, err)
		require.NoError(t, store.Save(tour))
	}
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "notes.txt"), []byte("x"), 0644))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cup", "Week 2", "Week 10"}, names)

	require.NoError(t, store.Remove("Week 2"))
	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cup", "Week 10"}, names)
}

func TestStoreListMissingDirectory(t *testing.T) {
	store := &Store{Dir: filepath.Join(t.TempDir(), "absent")}

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
