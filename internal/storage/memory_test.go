package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetClear(t *testing.T) {
	store := NewMemoryStore()

	// Absent keys return nil bytes with no error.
	raw, err := store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, store.Set(KeyExpenses, []byte(`[{"id":"1"}]`)))
	raw, err = store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), raw)

	require.NoError(t, store.Set(KeyExpenses, []byte(`[]`)))
	raw, err = store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw)

	require.NoError(t, store.Set(KeySettings, []byte(`{}`)))
	require.NoError(t, store.Clear())

	for _, key := range []string{KeyExpenses, KeySettings} {
		raw, err = store.Get(key)
		require.NoError(t, err)
		assert.Nil(t, raw)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("original")
	require.NoError(t, store.Set(KeyCategories, value))
	value[0] = 'X'

	raw, err := store.Get(KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), raw)

	// Mutating what Get returned must not touch the stored copy.
	raw[0] = 'Y'
	again, err := store.Get(KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
