package postgres

import (
	"context"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advertRepository implements the repository.AdvertRepository interface.
type advertRepository struct {
	db *gorm.DB
}

// NewAdvertRepository is the constructor for advertRepository.
func NewAdvertRepository(db *gorm.DB) repository.AdvertRepository {
	return &advertRepository{
		db: db,
	}
}

// CreateAdvert persists a new advert.
func (repo *advertRepository) CreateAdvert(ctx context.Context, advert *entity.Advert) error {
	advertM := fromAdvertDomain(advert)

	if err := repo.db.WithContext(ctx).Create(advertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advert")
	}

	advert.ID = advertM.ID
	advert.CreatedAt = advertM.CreatedAt
	advert.UpdatedAt = advertM.UpdatedAt

	return nil
}

// FindAdvertByID retrieves an advert by its unique ID.
func (repo *advertRepository) FindAdvertByID(ctx context.Context, id uuid.UUID) (*entity.Advert, error) {
	var advertM model.AdvertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&advertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvertNotFound
		}

		return nil, errors.Wrap(err, "failed to find advert by ID")
	}

	return toAdvertDomain(&advertM), nil
}

// UpdateAdvert persists changes to an existing advert.
func (repo *advertRepository) UpdateAdvert(ctx context.Context, advert *entity.Advert) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertModel{}).
		Where("id = ?", advert.ID).
		Updates(map[string]any{
			"title":     advert.Title,
			"body":      advert.Body,
			"placement": advert.Placement,
			"price":     advert.Price,
			"currency":  advert.Currency,
			"starts_at": advert.StartsAt,
			"ends_at":   advert.EndsAt,
			"image_id":  advert.ImageID,
			"status":    string(advert.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update advert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertNotFound
	}

	return nil
}

// UpdateAdvertStatus updates only the review status of an advert.
func (repo *advertRepository) UpdateAdvertStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update advert status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertNotFound
	}

	return nil
}

// ListAdverts retrieves a page of adverts, optionally filtered by review
// status and a search term against the title.
func (repo *advertRepository) ListAdverts(ctx context.Context, page repository.PageRequest, status entity.ReviewStatus) (repository.Page[*entity.Advert], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.AdvertModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if page.Search != "" {
		query = query.Where("title ILIKE ?", "%"+page.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.Advert]{}, errors.Wrap(err, "failed to count adverts")
	}

	var advertModels []*model.AdvertModel
	if err := query.
		Order("created_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&advertModels).Error; err != nil {
		return repository.Page[*entity.Advert]{}, errors.Wrap(err, "failed to list adverts")
	}

	adverts := make([]*entity.Advert, 0, len(advertModels))
	for _, advertM := range advertModels {
		adverts = append(adverts, toAdvertDomain(advertM))
	}

	return repository.Page[*entity.Advert]{
		Items:       adverts,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// ListAdvertsByOwner retrieves all adverts belonging to an owner.
func (repo *advertRepository) ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error) {
	var advertModels []*model.AdvertModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&advertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adverts by owner")
	}

	adverts := make([]*entity.Advert, 0, len(advertModels))
	for _, advertM := range advertModels {
		adverts = append(adverts, toAdvertDomain(advertM))
	}

	return adverts, nil
}

// DeleteAdvert removes an advert by its ID (soft delete).
func (repo *advertRepository) DeleteAdvert(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdvertModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete advert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdvertDomain converts a GORM AdvertModel to a domain Advert entity.
func toAdvertDomain(data *model.AdvertModel) *entity.Advert {
	if data == nil {
		return nil
	}

	return &entity.Advert{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Body:      data.Body,
		Placement: data.Placement,
		Price:     data.Price,
		Currency:  data.Currency,
		StartsAt:  data.StartsAt,
		EndsAt:    data.EndsAt,
		ImageID:   data.ImageID,
		Status:    entity.ReviewStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAdvertDomain converts a domain Advert entity to a GORM AdvertModel.
func fromAdvertDomain(advert *entity.Advert) *model.AdvertModel {
	if advert == nil {
		return nil
	}

	return &model.AdvertModel{
		ID:        advert.ID,
		OwnerID:   advert.OwnerID,
		Title:     advert.Title,
		Body:      advert.Body,
		Placement: advert.Placement,
		Price:     advert.Price,
		Currency:  advert.Currency,
		StartsAt:  advert.StartsAt,
		EndsAt:    advert.EndsAt,
		ImageID:   advert.ImageID,
		Status:    string(advert.Status),
		CreatedAt: advert.CreatedAt,
		UpdatedAt: advert.UpdatedAt,
	}
}
