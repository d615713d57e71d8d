package usecase

import (
	"context"

	"conectone/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadInput carries a decoded file payload and its attachment target.
type UploadInput struct {
	OwnerID     uuid.UUID
	EntityType  string
	EntityID    uuid.UUID
	Kind        entity.FileKind
	FileName    string
	ContentType string
	Usage       string
	Data        []byte
}

// FilingUsecase defines the interface for file upload use cases. Payloads
// live in the blob bucket; metadata rows attach them to domain records.
type FilingUsecase interface {
	// Upload stores a payload and its metadata.
	Upload(ctx context.Context, input *UploadInput) (*entity.FileUpload, error)

	// GetUpload retrieves upload metadata by ID.
	GetUpload(ctx context.Context, id uuid.UUID) (*entity.FileUpload, error)

	// Download retrieves the stored payload together with its metadata.
	Download(ctx context.Context, id uuid.UUID) (*entity.FileUpload, []byte, error)

	// Replace stores a new payload for the same attachment target and
	// removes the previous one once the swap succeeds.
	Replace(ctx context.Context, id uuid.UUID, input *UploadInput) (*entity.FileUpload, error)

	// ListByEntity retrieves all uploads attached to an entity.
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.FileUpload, error)

	// Delete removes an upload's metadata and payload.
	Delete(ctx context.Context, id uuid.UUID) error
}
