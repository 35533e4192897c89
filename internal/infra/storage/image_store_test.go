package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_Save(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewWithBucket(bucket)
	ctx := context.Background()

	key, err := store.Save(ctx, "bottle.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"), "key should keep the lowercased extension: %s", key)
	assert.NotContains(t, key, "bottle", "original name must not leak into the key")

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestBlobImageStore_SaveUniqueKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewWithBucket(bucket)
	ctx := context.Background()

	first, err := store.Save(ctx, "photo.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "photo.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobImageStore_HostileFilename(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewWithBucket(bucket)

	key, err := store.Save(context.Background(), "../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, "/")
}
