package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded waste images and hands back a referenceable
// path. The core never interprets the path beyond storing it on the record.
type ImageStore interface {
	// Save writes the image bytes under a collision-free name derived from
	// filename and returns the stored path.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
