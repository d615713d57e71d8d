package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrFileNotFound is returned when a file upload is not found.
var ErrFileNotFound = errors.New("file not found")

// FilingRepository defines the interface for upload metadata operations.
type FilingRepository interface {
	// CreateUpload persists metadata for a stored blob.
	CreateUpload(ctx context.Context, upload *entity.FileUpload) error

	// FindUploadByID retrieves upload metadata by its unique ID.
	FindUploadByID(ctx context.Context, id uuid.UUID) (*entity.FileUpload, error)

	// ListUploadsByEntity retrieves all uploads attached to an entity.
	ListUploadsByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.FileUpload, error)

	// DeleteUpload removes upload metadata by its ID (hard delete; the blob
	// itself is removed by the filing service).
	DeleteUpload(ctx context.Context, id uuid.UUID) error
}
