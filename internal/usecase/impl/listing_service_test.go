package impl

import (
	"context"
	"testing"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listingTestConfig() *config.Config {
	return &config.Config{
		Listings: &config.ListingsConfig{
			DefaultCountry:  "South Africa",
			DefaultCurrency: "ZAR",
		},
	}
}

func TestListingService_CreateListing_DefaultsCountry(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New(), Name: "Khumalo Plumbing"}
	tier := &entity.ListingTier{ID: uuid.New(), Name: "basic"}

	mockCompanyRepo.On("FindCompanyByID", ctx, company.ID).Return(company, nil)
	mockTierRepo.On("FindTierByID", ctx, tier.ID).Return(tier, nil)
	mockListingRepo.On("CreateListing", ctx, mock.MatchedBy(func(l *entity.BusinessListing) bool {
		return l.Country == "South Africa" && l.Status == entity.ReviewStatusPending
	})).Return(nil)

	listing, err := service.CreateListing(ctx, &usecase.ListingInput{
		CompanyID: company.ID,
		TierID:    tier.ID,
		Title:     "Plumbing and drains",
		City:      "Durban",
	})
	require.NoError(t, err)
	assert.Equal(t, "South Africa", listing.Country)
	assert.Equal(t, entity.ReviewStatusPending, listing.Status)
}

func TestListingService_CreateListing_UnknownCategory(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New()}
	tier := &entity.ListingTier{ID: uuid.New()}
	known := &entity.Category{ID: uuid.New(), Name: "Trades"}
	unknown := uuid.New()

	mockCompanyRepo.On("FindCompanyByID", ctx, company.ID).Return(company, nil)
	mockTierRepo.On("FindTierByID", ctx, tier.ID).Return(tier, nil)
	mockCategoryRepo.On("ListCategories", ctx).Return([]*entity.Category{known}, nil)

	_, err := service.CreateListing(ctx, &usecase.ListingInput{
		CompanyID:   company.ID,
		TierID:      tier.ID,
		CategoryIDs: []uuid.UUID{known.ID, unknown},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category "+unknown.String())
	mockListingRepo.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything)
}

func TestListingService_CreateListing_TierNotFound(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	company := &entity.Company{ID: uuid.New()}
	tierID := uuid.New()

	mockCompanyRepo.On("FindCompanyByID", ctx, company.ID).Return(company, nil)
	mockTierRepo.On("FindTierByID", ctx, tierID).Return(nil, repository.ErrListingTierNotFound)

	_, err := service.CreateListing(ctx, &usecase.ListingInput{CompanyID: company.ID, TierID: tierID})
	assert.ErrorIs(t, err, domainerrors.ErrListingTierNotFound)
}

func TestListingService_UpdateListing_ResetsToPending(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	listing := &entity.BusinessListing{
		ID:      uuid.New(),
		Country: "Botswana",
		Status:  entity.ReviewStatusApproved,
	}

	mockListingRepo.On("FindListingByID", ctx, listing.ID).Return(listing, nil)
	mockListingRepo.On("UpdateListing", ctx, mock.MatchedBy(func(l *entity.BusinessListing) bool {
		return l.Status == entity.ReviewStatusPending && l.Country == "Botswana"
	})).Return(nil)

	updated, err := service.UpdateListing(ctx, listing.ID, &usecase.ListingInput{
		TierID: uuid.New(),
		Title:  "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPending, updated.Status)
	assert.Equal(t, "Botswana", updated.Country, "blank country keeps the stored one")
}

func TestListingService_ReviewListing_ApprovedIsTerminal(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	listing := &entity.BusinessListing{ID: uuid.New(), Status: entity.ReviewStatusApproved}
	mockListingRepo.On("FindListingByID", ctx, listing.ID).Return(listing, nil)

	_, err := service.ReviewListing(ctx, listing.ID, entity.ReviewStatusRejected)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrInvalidReviewTransition.Message())
	mockListingRepo.AssertNotCalled(t, "UpdateListingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingService_ReviewListing_Approve(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	listing := &entity.BusinessListing{ID: uuid.New(), Status: entity.ReviewStatusPending}
	mockListingRepo.On("FindListingByID", ctx, listing.ID).Return(listing, nil)
	mockListingRepo.On("UpdateListingStatus", ctx, listing.ID, entity.ReviewStatusApproved).Return(nil)

	reviewed, err := service.ReviewListing(ctx, listing.ID, entity.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, reviewed.Status)
}

func TestListingService_CreateTier_DefaultsCurrency(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockTierRepo := mockRepo.NewMockListingTierRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingService(mockCompanyRepo, mockTierRepo, mockCategoryRepo, mockListingRepo, listingTestConfig())

	ctx := context.Background()
	mockTierRepo.On("CreateTier", ctx, mock.MatchedBy(func(tier *entity.ListingTier) bool {
		return tier.Currency == "ZAR"
	})).Return(nil)

	tier, err := service.CreateTier(ctx, &usecase.ListingTierInput{Name: "premium", Price: 499})
	require.NoError(t, err)
	assert.Equal(t, "ZAR", tier.Currency)
}
