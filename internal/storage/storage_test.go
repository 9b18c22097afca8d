// internal/storage/storage_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ProductsKey, []byte(`[{"id":"1"}]`)))

	value, found, err := store.Get(ProductsKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", []byte("one")))
	require.NoError(t, store.Set("key", []byte("two")))

	value, found, err := store.Get("key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("two"), value)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", []byte("value")))
	require.NoError(t, store.Delete("key"))

	_, found, err := store.Get("key")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is a no-op
	require.NoError(t, store.Delete("key"))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("key", []byte("value")))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemStoreIsolatesCallers(t *testing.T) {
	store := NewMemStore()
	original := []byte("value")
	require.NoError(t, store.Set("key", original))

	got, found, err := store.Get("key")
	require.NoError(t, err)
	require.True(t, found)

	// Mutating the returned slice must not leak into the store
	got[0] = 'X'

	again, _, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}
