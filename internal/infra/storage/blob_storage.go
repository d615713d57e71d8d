// Package storage implements blob payload storage for the filing module on
// top of gocloud.dev buckets. The bucket URL decides the backend: file://
// for local disk, gs:// for Google Cloud Storage, mem:// for tests.
package storage

import (
	"context"
	"fmt"
	"io"

	"conectone/internal/domain/service"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the bucket addressed by bucketURL. The caller owns the
// returned Close and should hook it into shutdown.
func NewBlobStorage(ctx context.Context, bucketURL string) (service.FileStorage, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)
	}

	s := &blobStorage{bucket: bucket}

	return s, bucket.Close, nil
}

// Save writes the payload under key with the given content type.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, payload []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}

	w, err := s.bucket.NewWriter(ctx, key, opts)
	if err != nil {
		return fmt.Errorf("failed to open writer for %s: %w", key, err)
	}

	if _, err := w.Write(payload); err != nil {
		_ = w.Close()

		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer for %s: %w", key, err)
	}

	return nil
}

// Load reads the payload stored under key.
func (s *blobStorage) Load(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open reader for %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return payload, nil
}

// Delete removes the payload stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}
