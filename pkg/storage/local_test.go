package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)
	ctx := context.Background()

	path, err := store.Save(ctx, "grower@example.com", "abc_leaf.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "grower@example.com", "abc_leaf.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))

	require.NoError(t, store.Remove(ctx, "grower@example.com", "abc_leaf.jpg"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	assert.NoError(t, store.Remove(context.Background(), "grower@example.com", "gone.jpg"))
}

func TestSaveRejectsPathKeys(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../escape.jpg", "a/b.jpg", "", "."} {
		_, err := store.Save(ctx, "grower@example.com", key, strings.NewReader("x"))
		assert.Error(t, err, key)
	}
}

func TestSaveCreatesOwnerFolder(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	_, err := store.Save(context.Background(), "new@example.com", "k.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "new@example.com"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
