package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSetGetRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	saved := []record{{Name: "a", Count: 2}, {Name: "b", Count: 1}}
	require.NoError(t, store.Set("stylehub-cart", saved))

	var loaded []record
	require.NoError(t, store.Get("stylehub-cart", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestGetMissingKeyLeavesValueUntouched(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	loaded := []record{{Name: "seed"}}
	require.NoError(t, store.Get("absent", &loaded))
	assert.Equal(t, []record{{Name: "seed"}}, loaded)
}

func TestGetCorruptValueReturnsError(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var loaded []record
	assert.Error(t, store.Get("bad", &loaded))
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", record{Name: "x"}))
	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key"))

	var loaded record
	require.NoError(t, store.Get("key", &loaded))
	assert.Empty(t, loaded.Name)
}
