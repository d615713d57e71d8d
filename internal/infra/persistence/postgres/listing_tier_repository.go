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

// listingTierRepository implements the repository.ListingTierRepository interface.
type listingTierRepository struct {
	db *gorm.DB
}

// NewListingTierRepository is the constructor for listingTierRepository.
func NewListingTierRepository(db *gorm.DB) repository.ListingTierRepository {
	return &listingTierRepository{
		db: db,
	}
}

// CreateTier persists a new listing tier.
func (repo *listingTierRepository) CreateTier(ctx context.Context, tier *entity.ListingTier) error {
	tierM := fromListingTierDomain(tier)

	if err := repo.db.WithContext(ctx).Create(tierM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing tier")
	}

	tier.ID = tierM.ID
	tier.CreatedAt = tierM.CreatedAt
	tier.UpdatedAt = tierM.UpdatedAt

	return nil
}

// FindTierByID retrieves a tier by its unique ID.
func (repo *listingTierRepository) FindTierByID(ctx context.Context, id uuid.UUID) (*entity.ListingTier, error) {
	var tierM model.ListingTierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing tier by ID")
	}

	return toListingTierDomain(&tierM), nil
}

// ListTiers retrieves all listing tiers ordered by price.
func (repo *listingTierRepository) ListTiers(ctx context.Context) ([]*entity.ListingTier, error) {
	var tierModels []*model.ListingTierModel

	if err := repo.db.WithContext(ctx).
		Order("price ASC").
		Find(&tierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listing tiers")
	}

	tiers := make([]*entity.ListingTier, 0, len(tierModels))
	for _, tierM := range tierModels {
		tiers = append(tiers, toListingTierDomain(tierM))
	}

	return tiers, nil
}

// UpdateTier persists changes to an existing tier.
func (repo *listingTierRepository) UpdateTier(ctx context.Context, tier *entity.ListingTier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingTierModel{}).
		Where("id = ?", tier.ID).
		Updates(map[string]any{
			"name":        tier.Name,
			"description": tier.Description,
			"price":       tier.Price,
			"currency":    tier.Currency,
			"max_images":  tier.MaxImages,
			"max_videos":  tier.MaxVideos,
			"featured":    tier.Featured,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing tier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingTierNotFound
	}

	return nil
}

// DeleteTier removes a tier by its ID (soft delete).
func (repo *listingTierRepository) DeleteTier(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingTierModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing tier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingTierNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingTierDomain converts a GORM ListingTierModel to a domain ListingTier entity.
func toListingTierDomain(data *model.ListingTierModel) *entity.ListingTier {
	if data == nil {
		return nil
	}

	return &entity.ListingTier{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		MaxImages:   data.MaxImages,
		MaxVideos:   data.MaxVideos,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromListingTierDomain converts a domain ListingTier entity to a GORM ListingTierModel.
func fromListingTierDomain(tier *entity.ListingTier) *model.ListingTierModel {
	if tier == nil {
		return nil
	}

	return &model.ListingTierModel{
		ID:          tier.ID,
		Name:        tier.Name,
		Description: tier.Description,
		Price:       tier.Price,
		Currency:    tier.Currency,
		MaxImages:   tier.MaxImages,
		MaxVideos:   tier.MaxVideos,
		Featured:    tier.Featured,
		CreatedAt:   tier.CreatedAt,
		UpdatedAt:   tier.UpdatedAt,
	}
}
