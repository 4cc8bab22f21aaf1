package media

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/static/media")
	require.NoError(t, err)
	return store
}

func TestDiskStore_SaveListDelete(t *testing.T) {
	store := newTestStore(t)

	content := []byte("hello blob")
	item, err := store.Save(bytes.NewReader(content), int64(len(content)), "photo.jpg", "gallery", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(item.Name, "-photo.jpg"))
	assert.Equal(t, "gallery/"+item.Name, item.FullPath)
	assert.Equal(t, "/static/media/gallery/"+item.Name, item.URL)
	assert.Equal(t, "image/jpeg", item.ContentType)
	assert.EqualValues(t, len(content), item.Size)

	items, err := store.List("gallery")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.Name, items[0].Name)

	require.NoError(t, store.Delete(item.FullPath))

	items, err = store.List("gallery")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiskStore_SaveReportsProgressEndingAt100(t *testing.T) {
	store := newTestStore(t)

	content := bytes.Repeat([]byte("x"), 3*copyChunkSize+17)
	var reported []int
	_, err := store.Save(bytes.NewReader(content), int64(len(content)), "big.bin", "media", func(pct int) {
		reported = append(reported, pct)
	})
	require.NoError(t, err)

	require.NotEmpty(t, reported)
	assert.Equal(t, 100, reported[len(reported)-1])
	for i := 1; i < len(reported); i++ {
		assert.Greater(t, reported[i], reported[i-1], "progress must be strictly increasing")
	}
}

func TestDiskStore_SaveRejectsEmptyAndOversized(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(bytes.NewReader(nil), 0, "empty.txt", "media", nil)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = store.Save(bytes.NewReader(nil), MaxFileSize+1, "huge.bin", "media", nil)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDiskStore_DeleteMissingBlob(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete("media/nope.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestDiskStore_ListUnknownFolderIsEmpty(t *testing.T) {
	store := newTestStore(t)

	items, err := store.List("never-created")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiskStore_SanitizesAwkwardFilenames(t *testing.T) {
	store := newTestStore(t)

	content := []byte("data")
	item, err := store.Save(bytes.NewReader(content), int64(len(content)), "صورة.png", "media", nil)
	require.NoError(t, err)

	// the Arabic name sanitizes away entirely, leaving a uuid-based key
	assert.True(t, strings.HasSuffix(item.Name, ".png"))
	assert.NotContains(t, item.Name, "صورة")
}
