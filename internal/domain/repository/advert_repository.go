package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrAdvertNotFound is returned when an advert is not found.
var ErrAdvertNotFound = errors.New("advert not found")

// AdvertRepository defines the interface for advertisement database operations.
type AdvertRepository interface {
	// CreateAdvert persists a new advert.
	CreateAdvert(ctx context.Context, advert *entity.Advert) error

	// FindAdvertByID retrieves an advert by its unique ID.
	FindAdvertByID(ctx context.Context, id uuid.UUID) (*entity.Advert, error)

	// UpdateAdvert persists changes to an existing advert.
	UpdateAdvert(ctx context.Context, advert *entity.Advert) error

	// UpdateAdvertStatus updates only the review status of an advert.
	UpdateAdvertStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// ListAdverts retrieves a page of adverts, optionally filtered by review
	// status (empty status means all) and a search term against the title.
	ListAdverts(ctx context.Context, page PageRequest, status entity.ReviewStatus) (Page[*entity.Advert], error)

	// ListAdvertsByOwner retrieves all adverts belonging to an owner.
	ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error)

	// DeleteAdvert removes an advert by its ID (soft delete).
	DeleteAdvert(ctx context.Context, id uuid.UUID) error
}
