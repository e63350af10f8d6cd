package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateClientID_GeneratesAndPersistsWhenAbsent(t *testing.T) {
	storage := NewMemorySessionStorage()
	id := LoadOrCreateClientID(storage)
	require.NotEmpty(t, id)

	stored, ok := storage.Get(clientIDStorageKey)
	require.True(t, ok)
	require.Equal(t, id, stored)
}

func TestLoadOrCreateClientID_ReusesPersistedValue(t *testing.T) {
	storage := NewMemorySessionStorage()
	storage.Set(clientIDStorageKey, "existing-id")
	id := LoadOrCreateClientID(storage)
	require.Equal(t, "existing-id", id)
}
