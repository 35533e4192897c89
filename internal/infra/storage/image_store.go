// Package storage persists uploaded waste images through a gocloud.dev blob
// bucket, so the backing store is swappable between local disk and cloud
// object storage by URL alone.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"ecoconnect/config"
	"ecoconnect/internal/domain/service"
	"ecoconnect/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// scheme
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// blobImageStore implements the ImageStore interface on top of a blob bucket.
type blobImageStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already-open bucket. Used by tests.
func NewWithBucket(bucket *blob.Bucket) service.ImageStore {
	return &blobImageStore{bucket: bucket}
}

// Save writes the image bytes under a collision-free name and returns the key.
// The uploaded filename only contributes its extension; the rest of the key is
// a fresh UUID, so hostile filenames cannot traverse or collide.
func (s *blobImageStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext

	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	return key, nil
}
