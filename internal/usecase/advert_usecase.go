package usecase

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// AdvertInput carries the fields for creating or updating an advert.
type AdvertInput struct {
	OwnerID   uuid.UUID
	Title     string
	Body      string
	Placement string
	Price     float64
	Currency  string
	StartsAt  time.Time
	EndsAt    time.Time
}

// AdvertUsecase defines the interface for advertisement use cases. New and
// edited adverts re-enter moderation as pending.
type AdvertUsecase interface {
	// CreateAdvert submits a new advert for review.
	CreateAdvert(ctx context.Context, input *AdvertInput) (*entity.Advert, error)

	// GetAdvert retrieves an advert by ID.
	GetAdvert(ctx context.Context, id uuid.UUID) (*entity.Advert, error)

	// UpdateAdvert edits an advert and resets its status to pending.
	UpdateAdvert(ctx context.Context, id uuid.UUID, input *AdvertInput) (*entity.Advert, error)

	// ReviewAdvert moves an advert through the moderation lifecycle. Only
	// transitions allowed by the review state machine succeed.
	ReviewAdvert(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.Advert, error)

	// ListAdverts retrieves a page of adverts filtered by review status.
	ListAdverts(ctx context.Context, query PageQuery, status entity.ReviewStatus) (repository.Page[*entity.Advert], error)

	// ListAdvertsByOwner retrieves all adverts belonging to an owner.
	ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error)

	// AttachImage swaps the advert's image attachment.
	AttachImage(ctx context.Context, id, imageID uuid.UUID) error

	// DeleteAdvert removes an advert.
	DeleteAdvert(ctx context.Context, id uuid.UUID) error
}
