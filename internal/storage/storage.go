package storage

import (
	"context"
	"io"
	"os"
)

// BlobStore persists an opaque byte stream and returns a public URL for it.
// The rest of the application treats the returned URL as an opaque string.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// NewFromEnv returns the S3 store when STORAGE_BUCKET is set, otherwise a
// local filesystem store for development.
func NewFromEnv(ctx context.Context) (BlobStore, error) {
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		return NewS3Store(ctx, bucket, os.Getenv("STORAGE_BASE_URL"))
	}
	return NewFSStore(os.Getenv("STORAGE_DIR"), os.Getenv("STORAGE_BASE_URL"))
}
