package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	raw, err := store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, store.Set(KeyExpenses, []byte(`[{"id":"a"}]`)))
	raw, err = store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), raw)

	// Upsert overwrites in place.
	require.NoError(t, store.Set(KeyExpenses, []byte(`[]`)))
	raw, err = store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw)
}

func TestSQLiteStoreClear(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set(KeyExpenses, []byte(`[]`)))
	require.NoError(t, store.Set(KeyCategories, []byte(`[]`)))
	require.NoError(t, store.Set(KeySettings, []byte(`{}`)))

	require.NoError(t, store.Clear())

	for _, key := range []string{KeyExpenses, KeyCategories, KeySettings} {
		raw, err := store.Get(key)
		require.NoError(t, err)
		assert.Nil(t, raw, "record %q should be gone", key)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeySettings, []byte(`{"currency":"EUR"}`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	raw, err := reopened.Get(KeySettings)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"currency":"EUR"}`), raw)
}

func TestSQLiteStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "ledger.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(KeyExpenses, []byte(`[]`)))
}
