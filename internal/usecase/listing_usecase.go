package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// CompanyInput carries the fields for creating or updating a company.
type CompanyInput struct {
	OwnerID        uuid.UUID
	Name           string
	RegistrationNo string
	Email          string
	Phone          string
	Website        string
}

// ListingTierInput carries the fields for creating or updating a tier.
type ListingTierInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	MaxImages   int
	MaxVideos   int
	Featured    bool
}

// ListingInput carries the fields for creating or updating a listing.
type ListingInput struct {
	CompanyID   uuid.UUID
	TierID      uuid.UUID
	Title       string
	Description string
	Email       string
	Phone       string
	Website     string
	AddressLine string
	City        string
	Province    string
	Country     string
	CategoryIDs []uuid.UUID
}

// ListingUsecase defines the interface for the business directory use cases:
// companies, paid tiers, categories and the listings themselves. Listings
// share the moderation lifecycle with adverts.
type ListingUsecase interface {
	// CreateCompany registers a company that can own listings.
	CreateCompany(ctx context.Context, input *CompanyInput) (*entity.Company, error)

	// GetCompany retrieves a company by ID.
	GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// UpdateCompany persists changes to a company.
	UpdateCompany(ctx context.Context, id uuid.UUID, input *CompanyInput) (*entity.Company, error)

	// ListCompanies retrieves a page of companies.
	ListCompanies(ctx context.Context, query PageQuery) (repository.Page[*entity.Company], error)

	// DeleteCompany removes a company.
	DeleteCompany(ctx context.Context, id uuid.UUID) error

	// CreateTier defines a new paid directory tier.
	CreateTier(ctx context.Context, input *ListingTierInput) (*entity.ListingTier, error)

	// ListTiers retrieves all tiers ordered by price.
	ListTiers(ctx context.Context) ([]*entity.ListingTier, error)

	// UpdateTier persists changes to a tier.
	UpdateTier(ctx context.Context, id uuid.UUID, input *ListingTierInput) (*entity.ListingTier, error)

	// DeleteTier removes a tier.
	DeleteTier(ctx context.Context, id uuid.UUID) error

	// CreateCategory adds a directory category.
	CreateCategory(ctx context.Context, name string, parentID *uuid.UUID) (*entity.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CreateListing submits a new listing for review.
	CreateListing(ctx context.Context, input *ListingInput) (*entity.BusinessListing, error)

	// GetListing retrieves a listing by ID.
	GetListing(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error)

	// UpdateListing edits a listing and resets its status to pending.
	UpdateListing(ctx context.Context, id uuid.UUID, input *ListingInput) (*entity.BusinessListing, error)

	// ReviewListing moves a listing through the moderation lifecycle.
	ReviewListing(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.BusinessListing, error)

	// AttachListingImage swaps the listing's image attachment.
	AttachListingImage(ctx context.Context, id, imageID uuid.UUID) error

	// ListListings retrieves a page of listings filtered by review status.
	ListListings(ctx context.Context, query PageQuery, status entity.ReviewStatus) (repository.Page[*entity.BusinessListing], error)

	// ListListingsByCompany retrieves all listings for a company.
	ListListingsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.BusinessListing, error)

	// DeleteListing removes a listing.
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
