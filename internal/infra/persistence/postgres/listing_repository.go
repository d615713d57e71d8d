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

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// CreateListing persists a new listing with its category links.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.BusinessListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing by its unique ID, including categories.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	var listingM model.BusinessListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// UpdateListing persists changes to an existing listing and replaces its
// category links.
func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.BusinessListing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"tier_id":      listing.TierID,
			"title":        listing.Title,
			"description":  listing.Description,
			"email":        listing.Email,
			"phone":        listing.Phone,
			"website":      listing.Website,
			"address_line": listing.AddressLine,
			"city":         listing.City,
			"province":     listing.Province,
			"country":      listing.Country,
			"status":       string(listing.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	// Replace category associations with the new set.
	listingM := &model.BusinessListingModel{ID: listing.ID}
	categories := make([]model.CategoryModel, 0, len(listing.Categories))
	for _, category := range listing.Categories {
		categories = append(categories, *fromCategoryDomain(&category))
	}
	if err := repo.db.WithContext(ctx).
		Model(listingM).
		Association("Categories").
		Replace(categories); err != nil {
		return errors.Wrap(err, "failed to replace listing categories")
	}

	return nil
}

// UpdateListingStatus updates only the review status of a listing.
func (repo *listingRepository) UpdateListingStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateListingImage swaps the listing's image attachment.
func (repo *listingRepository) UpdateListingImage(ctx context.Context, id uuid.UUID, imageID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessListingModel{}).
		Where("id = ?", id).
		Update("image_id", imageID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// ListListings retrieves a page of listings filtered by review status and an
// optional search term against title and city.
func (repo *listingRepository) ListListings(ctx context.Context, page repository.PageRequest, status entity.ReviewStatus) (repository.Page[*entity.BusinessListing], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.BusinessListingModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if page.Search != "" {
		pattern := "%" + page.Search + "%"
		query = query.Where("title ILIKE ? OR city ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.BusinessListing]{}, errors.Wrap(err, "failed to count listings")
	}

	var listingModels []*model.BusinessListingModel
	if err := query.
		Preload("Categories").
		Order("created_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&listingModels).Error; err != nil {
		return repository.Page[*entity.BusinessListing]{}, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.BusinessListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return repository.Page[*entity.BusinessListing]{
		Items:       listings,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// ListListingsByCompany retrieves all listings for a company.
func (repo *listingRepository) ListListingsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.BusinessListing, error) {
	var listingModels []*model.BusinessListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings by company")
	}

	listings := make([]*entity.BusinessListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// DeleteListing removes a listing by its ID (soft delete).
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM BusinessListingModel to a domain BusinessListing entity.
func toListingDomain(data *model.BusinessListingModel) *entity.BusinessListing {
	if data == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(data.Categories))
	for i := range data.Categories {
		categories = append(categories, *toCategoryDomain(&data.Categories[i]))
	}

	return &entity.BusinessListing{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		TierID:      data.TierID,
		Title:       data.Title,
		Description: data.Description,
		Email:       data.Email,
		Phone:       data.Phone,
		Website:     data.Website,
		AddressLine: data.AddressLine,
		City:        data.City,
		Province:    data.Province,
		Country:     data.Country,
		Categories:  categories,
		ImageID:     data.ImageID,
		Status:      entity.ReviewStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromListingDomain converts a domain BusinessListing entity to a GORM BusinessListingModel.
func fromListingDomain(listing *entity.BusinessListing) *model.BusinessListingModel {
	if listing == nil {
		return nil
	}

	categories := make([]model.CategoryModel, 0, len(listing.Categories))
	for i := range listing.Categories {
		categories = append(categories, *fromCategoryDomain(&listing.Categories[i]))
	}

	return &model.BusinessListingModel{
		ID:          listing.ID,
		CompanyID:   listing.CompanyID,
		TierID:      listing.TierID,
		Title:       listing.Title,
		Description: listing.Description,
		Email:       listing.Email,
		Phone:       listing.Phone,
		Website:     listing.Website,
		AddressLine: listing.AddressLine,
		City:        listing.City,
		Province:    listing.Province,
		Country:     listing.Country,
		Categories:  categories,
		ImageID:     listing.ImageID,
		Status:      string(listing.Status),
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}
