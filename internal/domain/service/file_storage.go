package service

import "context"

// FileStorage defines the interface for blob payload storage backing the
// filing module. Keys are opaque to callers; the filing service derives them
// from the upload kind and id.
type FileStorage interface {
	// Save writes the payload under key with the given content type.
	Save(ctx context.Context, key, contentType string, payload []byte) error

	// Load reads the payload stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the payload stored under key.
	Delete(ctx context.Context, key string) error
}
