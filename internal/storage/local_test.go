package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) Storage {
	t.Helper()
	store, err := NewStorage(Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorageRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.Save(ctx, "photo.jpg", strings.NewReader("image-bytes"), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, "photo.jpg")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	url, err := store.GetURL(ctx, "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/photo.jpg", url)
}

func TestLocalStorageDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "gone.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, store.Delete(ctx, "gone.png"))

	exists, err := store.Exists(ctx, "gone.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)
}
