package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/catalog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetItems(t *testing.T) {
	store := newTestStore(t)

	items := []catalog.Item{
		{ID: "1", Name: "Haircut"},
		{ID: "2", Name: "Hairdye"},
	}
	require.NoError(t, store.SaveItems("salon-west", items))

	got, err := store.GetItems("salon-west")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestGetItemsUnknownZone(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetItems("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cached catalog")
}

func TestSaveItemsReplacesWholesale(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveItems("zone", []catalog.Item{
		{ID: "1", Name: "Haircut"},
		{ID: "2", Name: "Hairdye"},
	}))
	require.NoError(t, store.SaveItems("zone", []catalog.Item{
		{ID: "3", Name: "Shave"},
	}))

	got, err := store.GetItems("zone")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Shave", got[0].Name)
}

func TestZonesAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveItems("east", []catalog.Item{{ID: "1", Name: "Haircut"}}))
	require.NoError(t, store.SaveItems("west", []catalog.Item{{ID: "2", Name: "Shave"}}))

	east, err := store.GetItems("east")
	require.NoError(t, err)
	west, err := store.GetItems("west")
	require.NoError(t, err)

	assert.Equal(t, "Haircut", east[0].Name)
	assert.Equal(t, "Shave", west[0].Name)
}

func TestNewStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveItems("zone", []catalog.Item{{ID: "1", Name: "x"}}))
}
