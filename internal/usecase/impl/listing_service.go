package impl

import (
	"context"
	"time"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// listingService implements the ListingUsecase interface. It spans the
// directory's four aggregates: companies, tiers, categories and listings.
type listingService struct {
	companyRepo     repository.CompanyRepository
	tierRepo        repository.ListingTierRepository
	categoryRepo    repository.CategoryRepository
	listingRepo     repository.ListingRepository
	defaultCountry  string
	defaultCurrency string
}

// NewListingService creates a new listing service instance.
func NewListingService(
	companyRepo repository.CompanyRepository,
	tierRepo repository.ListingTierRepository,
	categoryRepo repository.CategoryRepository,
	listingRepo repository.ListingRepository,
	cfg *config.Config,
) usecase.ListingUsecase {
	defaultCountry := ""
	defaultCurrency := ""
	if cfg != nil && cfg.Listings != nil {
		defaultCountry = cfg.Listings.DefaultCountry
		defaultCurrency = cfg.Listings.DefaultCurrency
	}

	return &listingService{
		companyRepo:     companyRepo,
		tierRepo:        tierRepo,
		categoryRepo:    categoryRepo,
		listingRepo:     listingRepo,
		defaultCountry:  defaultCountry,
		defaultCurrency: defaultCurrency,
	}
}

// CreateCompany registers a company that can own listings.
func (s *listingService) CreateCompany(ctx context.Context, input *usecase.CompanyInput) (*entity.Company, error) {
	now := time.Now().UTC()
	company := &entity.Company{
		ID:             uuid.New(),
		OwnerID:        input.OwnerID,
		Name:           input.Name,
		RegistrationNo: input.RegistrationNo,
		Email:          input.Email,
		Phone:          input.Phone,
		Website:        input.Website,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.companyRepo.CreateCompany(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to create company")
	}

	return company, nil
}

// GetCompany retrieves a company by ID.
func (s *listingService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return company, nil
}

// UpdateCompany persists changes to a company.
func (s *listingService) UpdateCompany(ctx context.Context, id uuid.UUID, input *usecase.CompanyInput) (*entity.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.RegistrationNo = input.RegistrationNo
	company.Email = input.Email
	company.Phone = input.Phone
	company.Website = input.Website
	company.UpdatedAt = time.Now().UTC()

	if err := s.companyRepo.UpdateCompany(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to update company")
	}

	return company, nil
}

// ListCompanies retrieves a page of companies.
func (s *listingService) ListCompanies(ctx context.Context, query usecase.PageQuery) (repository.Page[*entity.Company], error) {
	page, err := s.companyRepo.ListCompanies(ctx, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Company]{}, errors.Wrap(err, "failed to list companies")
	}

	return page, nil
}

// DeleteCompany removes a company.
func (s *listingService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := s.companyRepo.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return domainerrors.ErrCompanyNotFound
		}

		return errors.Wrap(err, "failed to delete company")
	}

	return nil
}

// CreateTier defines a new paid directory tier.
func (s *listingService) CreateTier(ctx context.Context, input *usecase.ListingTierInput) (*entity.ListingTier, error) {
	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := time.Now().UTC()
	tier := &entity.ListingTier{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		MaxImages:   input.MaxImages,
		MaxVideos:   input.MaxVideos,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tierRepo.CreateTier(ctx, tier); err != nil {
		return nil, errors.Wrap(err, "failed to create listing tier")
	}

	return tier, nil
}

// ListTiers retrieves all tiers ordered by price.
func (s *listingService) ListTiers(ctx context.Context) ([]*entity.ListingTier, error) {
	tiers, err := s.tierRepo.ListTiers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	return tiers, nil
}

// UpdateTier persists changes to a tier.
func (s *listingService) UpdateTier(ctx context.Context, id uuid.UUID, input *usecase.ListingTierInput) (*entity.ListingTier, error) {
	tier, err := s.tierRepo.FindTierByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingTierNotFound) {
			return nil, domainerrors.ErrListingTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier by id")
	}

	tier.Name = input.Name
	tier.Description = input.Description
	tier.Price = input.Price
	if input.Currency != "" {
		tier.Currency = input.Currency
	}
	tier.MaxImages = input.MaxImages
	tier.MaxVideos = input.MaxVideos
	tier.Featured = input.Featured
	tier.UpdatedAt = time.Now().UTC()

	if err := s.tierRepo.UpdateTier(ctx, tier); err != nil {
		return nil, errors.Wrap(err, "failed to update tier")
	}

	return tier, nil
}

// DeleteTier removes a tier.
func (s *listingService) DeleteTier(ctx context.Context, id uuid.UUID) error {
	if err := s.tierRepo.DeleteTier(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingTierNotFound) {
			return domainerrors.ErrListingTierNotFound
		}

		return errors.Wrap(err, "failed to delete tier")
	}

	return nil
}

// CreateCategory adds a directory category.
func (s *listingService) CreateCategory(ctx context.Context, name string, parentID *uuid.UUID) (*entity.Category, error) {
	category := &entity.Category{
		ID:       uuid.New(),
		Name:     name,
		ParentID: parentID,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories retrieves all categories.
func (s *listingService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// DeleteCategory removes a category.
func (s *listingService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateListing submits a new listing for review.
func (s *listingService) CreateListing(ctx context.Context, input *usecase.ListingInput) (*entity.BusinessListing, error) {
	if _, err := s.GetCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.tierRepo.FindTierByID(ctx, input.TierID); err != nil {
		if errors.Is(err, repository.ErrListingTierNotFound) {
			return nil, domainerrors.ErrListingTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier by id")
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	country := input.Country
	if country == "" {
		country = s.defaultCountry
	}

	now := time.Now().UTC()
	listing := &entity.BusinessListing{
		ID:          uuid.New(),
		CompanyID:   input.CompanyID,
		TierID:      input.TierID,
		Title:       input.Title,
		Description: input.Description,
		Email:       input.Email,
		Phone:       input.Phone,
		Website:     input.Website,
		AddressLine: input.AddressLine,
		City:        input.City,
		Province:    input.Province,
		Country:     country,
		Categories:  categories,
		Status:      entity.ReviewStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

// GetListing retrieves a listing by ID.
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return listing, nil
}

// UpdateListing edits a listing and resets its status to pending.
func (s *listingService) UpdateListing(ctx context.Context, id uuid.UUID, input *usecase.ListingInput) (*entity.BusinessListing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	listing.TierID = input.TierID
	listing.Title = input.Title
	listing.Description = input.Description
	listing.Email = input.Email
	listing.Phone = input.Phone
	listing.Website = input.Website
	listing.AddressLine = input.AddressLine
	listing.City = input.City
	listing.Province = input.Province
	if input.Country != "" {
		listing.Country = input.Country
	}
	listing.Categories = categories
	listing.Status = listing.Status.Resubmit()
	listing.UpdatedAt = time.Now().UTC()

	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

// ReviewListing moves a listing through the moderation lifecycle.
func (s *listingService) ReviewListing(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.BusinessListing, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown review status")
	}

	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !listing.Status.CanTransition(status) {
		return nil, domainerrors.ErrInvalidReviewTransition.WithDetails(
			string(listing.Status) + " -> " + string(status))
	}

	if err := s.listingRepo.UpdateListingStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update listing status")
	}

	listing.Status = status
	listing.UpdatedAt = time.Now().UTC()

	return listing, nil
}

// AttachListingImage swaps the listing's image attachment.
func (s *listingService) AttachListingImage(ctx context.Context, id, imageID uuid.UUID) error {
	if _, err := s.GetListing(ctx, id); err != nil {
		return err
	}

	if err := s.listingRepo.UpdateListingImage(ctx, id, &imageID); err != nil {
		return errors.Wrap(err, "failed to attach listing image")
	}

	return nil
}

// ListListings retrieves a page of listings filtered by review status.
func (s *listingService) ListListings(ctx context.Context, query usecase.PageQuery, status entity.ReviewStatus) (repository.Page[*entity.BusinessListing], error) {
	if status != "" && !status.Valid() {
		return repository.Page[*entity.BusinessListing]{}, domainerrors.ErrValidationFailed.WithDetails("unknown review status")
	}

	page, err := s.listingRepo.ListListings(ctx, query.PageRequest(), status)
	if err != nil {
		return repository.Page[*entity.BusinessListing]{}, errors.Wrap(err, "failed to list listings")
	}

	return page, nil
}

// ListListingsByCompany retrieves all listings for a company.
func (s *listingService) ListListingsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.BusinessListing, error) {
	listings, err := s.listingRepo.ListListingsByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings by company")
	}

	return listings, nil
}

// DeleteListing removes a listing.
func (s *listingService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := s.listingRepo.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	return nil
}

// resolveCategories maps category IDs to known categories, rejecting IDs
// that do not exist.
func (s *listingService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	known, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	byID := make(map[uuid.UUID]*entity.Category, len(known))
	for _, c := range known {
		byID[c.ID] = c
	}

	categories := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category " + id.String())
		}
		categories = append(categories, *c)
	}

	return categories, nil
}
