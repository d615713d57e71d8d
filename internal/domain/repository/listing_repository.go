package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for directory persistence.
var (
	// ErrListingNotFound is returned when a business listing is not found.
	ErrListingNotFound = errors.New("business listing not found")
	// ErrListingTierNotFound is returned when a listing tier is not found.
	ErrListingTierNotFound = errors.New("listing tier not found")
	// ErrCompanyNotFound is returned when a company is not found.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// CompanyRepository defines the interface for company database operations.
type CompanyRepository interface {
	// CreateCompany persists a new company.
	CreateCompany(ctx context.Context, company *entity.Company) error

	// FindCompanyByID retrieves a company by its unique ID.
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// UpdateCompany persists changes to an existing company.
	UpdateCompany(ctx context.Context, company *entity.Company) error

	// ListCompanies retrieves a page of companies.
	ListCompanies(ctx context.Context, page PageRequest) (Page[*entity.Company], error)

	// DeleteCompany removes a company by its ID (soft delete).
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

// ListingTierRepository defines the interface for listing tier operations.
type ListingTierRepository interface {
	// CreateTier persists a new listing tier.
	CreateTier(ctx context.Context, tier *entity.ListingTier) error

	// FindTierByID retrieves a tier by its unique ID.
	FindTierByID(ctx context.Context, id uuid.UUID) (*entity.ListingTier, error)

	// ListTiers retrieves all listing tiers ordered by price.
	ListTiers(ctx context.Context) ([]*entity.ListingTier, error)

	// UpdateTier persists changes to an existing tier.
	UpdateTier(ctx context.Context, tier *entity.ListingTier) error

	// DeleteTier removes a tier by its ID (soft delete).
	DeleteTier(ctx context.Context, id uuid.UUID) error
}

// ListingRepository defines the interface for business listing operations.
type ListingRepository interface {
	// CreateListing persists a new listing with its category links.
	CreateListing(ctx context.Context, listing *entity.BusinessListing) error

	// FindListingByID retrieves a listing by its unique ID, including categories.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error)

	// UpdateListing persists changes to an existing listing and replaces its
	// category links.
	UpdateListing(ctx context.Context, listing *entity.BusinessListing) error

	// UpdateListingStatus updates only the review status of a listing.
	UpdateListingStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// UpdateListingImage swaps the listing's image attachment.
	UpdateListingImage(ctx context.Context, id uuid.UUID, imageID *uuid.UUID) error

	// ListListings retrieves a page of listings filtered by review status
	// (empty means all) and an optional search term against title and city.
	ListListings(ctx context.Context, page PageRequest, status entity.ReviewStatus) (Page[*entity.BusinessListing], error)

	// ListListingsByCompany retrieves all listings for a company.
	ListListingsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.BusinessListing, error)

	// DeleteListing removes a listing by its ID (soft delete).
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category operations.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// DeleteCategory removes a category by its ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
