package impl

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// advertService implements the AdvertUsecase interface.
type advertService struct {
	advertRepo repository.AdvertRepository
}

// NewAdvertService creates a new advert service instance.
func NewAdvertService(advertRepo repository.AdvertRepository) usecase.AdvertUsecase {
	return &advertService{advertRepo: advertRepo}
}

// CreateAdvert submits a new advert for review.
func (s *advertService) CreateAdvert(ctx context.Context, input *usecase.AdvertInput) (*entity.Advert, error) {
	now := time.Now().UTC()
	advert := &entity.Advert{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Title:     input.Title,
		Body:      input.Body,
		Placement: input.Placement,
		Price:     input.Price,
		Currency:  input.Currency,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
		Status:    entity.ReviewStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.advertRepo.CreateAdvert(ctx, advert); err != nil {
		return nil, errors.Wrap(err, "failed to create advert")
	}

	return advert, nil
}

// GetAdvert retrieves an advert by ID.
func (s *advertService) GetAdvert(ctx context.Context, id uuid.UUID) (*entity.Advert, error) {
	advert, err := s.advertRepo.FindAdvertByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdvertNotFound) {
			return nil, domainerrors.ErrAdvertNotFound
		}

		return nil, errors.Wrap(err, "failed to find advert by id")
	}

	return advert, nil
}

// UpdateAdvert edits an advert and resets its status to pending. Edited
// content must pass moderation again before it is served.
func (s *advertService) UpdateAdvert(ctx context.Context, id uuid.UUID, input *usecase.AdvertInput) (*entity.Advert, error) {
	advert, err := s.GetAdvert(ctx, id)
	if err != nil {
		return nil, err
	}

	advert.Title = input.Title
	advert.Body = input.Body
	advert.Placement = input.Placement
	advert.Price = input.Price
	advert.Currency = input.Currency
	advert.StartsAt = input.StartsAt
	advert.EndsAt = input.EndsAt
	advert.Status = advert.Status.Resubmit()
	advert.UpdatedAt = time.Now().UTC()

	if err := s.advertRepo.UpdateAdvert(ctx, advert); err != nil {
		return nil, errors.Wrap(err, "failed to update advert")
	}

	return advert, nil
}

// ReviewAdvert moves an advert through the moderation lifecycle. Only
// transitions allowed by the review state machine succeed.
func (s *advertService) ReviewAdvert(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.Advert, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown review status")
	}

	advert, err := s.GetAdvert(ctx, id)
	if err != nil {
		return nil, err
	}

	if !advert.Status.CanTransition(status) {
		return nil, domainerrors.ErrInvalidReviewTransition.WithDetails(
			string(advert.Status) + " -> " + string(status))
	}

	if err := s.advertRepo.UpdateAdvertStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update advert status")
	}

	advert.Status = status
	advert.UpdatedAt = time.Now().UTC()

	return advert, nil
}

// ListAdverts retrieves a page of adverts filtered by review status.
func (s *advertService) ListAdverts(ctx context.Context, query usecase.PageQuery, status entity.ReviewStatus) (repository.Page[*entity.Advert], error) {
	if status != "" && !status.Valid() {
		return repository.Page[*entity.Advert]{}, domainerrors.ErrValidationFailed.WithDetails("unknown review status")
	}

	page, err := s.advertRepo.ListAdverts(ctx, query.PageRequest(), status)
	if err != nil {
		return repository.Page[*entity.Advert]{}, errors.Wrap(err, "failed to list adverts")
	}

	return page, nil
}

// ListAdvertsByOwner retrieves all adverts belonging to an owner.
func (s *advertService) ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error) {
	adverts, err := s.advertRepo.ListAdvertsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list adverts by owner")
	}

	return adverts, nil
}

// AttachImage swaps the advert's image attachment.
func (s *advertService) AttachImage(ctx context.Context, id, imageID uuid.UUID) error {
	advert, err := s.GetAdvert(ctx, id)
	if err != nil {
		return err
	}

	advert.ImageID = &imageID
	advert.UpdatedAt = time.Now().UTC()

	if err := s.advertRepo.UpdateAdvert(ctx, advert); err != nil {
		return errors.Wrap(err, "failed to attach advert image")
	}

	return nil
}

// DeleteAdvert removes an advert.
func (s *advertService) DeleteAdvert(ctx context.Context, id uuid.UUID) error {
	if err := s.advertRepo.DeleteAdvert(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdvertNotFound) {
			return domainerrors.ErrAdvertNotFound
		}

		return errors.Wrap(err, "failed to delete advert")
	}

	return nil
}
