package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	type rec struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	in := []rec{{Name: "breadboard", Price: 5.99}, {Name: "multimeter", Price: 29.99}}
	require.NoError(t, s.Set(KeyProducts, in))

	var out []rec
	require.NoError(t, s.Get(KeyProducts, &out))
	require.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	var out string
	err = s.Get(KeyAuthToken, &out)
	require.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestFileStoreDelete(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyAuthToken, "mock-token-u1"))
	require.NoError(t, s.Delete(KeyAuthToken))

	var out string
	require.ErrorIs(t, s.Get(KeyAuthToken, &out), ErrKeyNotFound)

	// deleting an absent key is a no-op
	require.NoError(t, s.Delete(KeyAuthToken))
}

func TestMemStoreMatchesFileStore(t *testing.T) {
	m := NewMemStore()

	require.NoError(t, m.Set(KeyCart, map[string]int{"p101": 2}))

	var out map[string]int
	require.NoError(t, m.Get(KeyCart, &out))
	require.Equal(t, map[string]int{"p101": 2}, out)

	var missing []string
	require.ErrorIs(t, m.Get(KeyUsers, &missing), ErrKeyNotFound)
}
