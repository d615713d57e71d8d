package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage_SaveAndLoad(t *testing.T) {
	ctx := context.Background()

	store, closer, err := NewBlobStorage(ctx, "mem://")
	require.NoError(t, err)
	defer func() { _ = closer() }()

	payload := []byte("hello storage")
	require.NoError(t, store.Save(ctx, "uploads/image/test.png", "image/png", payload))

	got, err := store.Load(ctx, "uploads/image/test.png")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestBlobStorage_LoadMissingKey(t *testing.T) {
	ctx := context.Background()

	store, closer, err := NewBlobStorage(ctx, "mem://")
	require.NoError(t, err)
	defer func() { _ = closer() }()

	_, err = store.Load(ctx, "uploads/missing")
	assert.Error(t, err)
}

func TestBlobStorage_Delete(t *testing.T) {
	ctx := context.Background()

	store, closer, err := NewBlobStorage(ctx, "mem://")
	require.NoError(t, err)
	defer func() { _ = closer() }()

	require.NoError(t, store.Save(ctx, "uploads/doc.pdf", "application/pdf", []byte("doc")))
	require.NoError(t, store.Delete(ctx, "uploads/doc.pdf"))

	_, err = store.Load(ctx, "uploads/doc.pdf")
	assert.Error(t, err)
}

func TestBlobStorage_InvalidURL(t *testing.T) {
	_, _, err := NewBlobStorage(context.Background(), "bogus://nowhere")
	assert.Error(t, err)
}
