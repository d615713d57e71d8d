package repository

import (
	"context"
	"testing"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAdvertRepository mocks repository.AdvertRepository.
type MockAdvertRepository struct {
	mock.Mock
}

// NewMockAdvertRepository creates a mock bound to the test lifecycle.
func NewMockAdvertRepository(t *testing.T) *MockAdvertRepository {
	m := &MockAdvertRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdvertRepository) CreateAdvert(ctx context.Context, advert *entity.Advert) error {
	return m.Called(ctx, advert).Error(0)
}

func (m *MockAdvertRepository) FindAdvertByID(ctx context.Context, id uuid.UUID) (*entity.Advert, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertRepository) UpdateAdvert(ctx context.Context, advert *entity.Advert) error {
	return m.Called(ctx, advert).Error(0)
}

func (m *MockAdvertRepository) UpdateAdvertStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockAdvertRepository) ListAdverts(ctx context.Context, page repository.PageRequest, status entity.ReviewStatus) (repository.Page[*entity.Advert], error) {
	args := m.Called(ctx, page, status)

	return args.Get(0).(repository.Page[*entity.Advert]), args.Error(1)
}

func (m *MockAdvertRepository) ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error) {
	args := m.Called(ctx, ownerID)
	if a, ok := args.Get(0).([]*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertRepository) DeleteAdvert(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCompanyRepository mocks repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

// NewMockCompanyRepository creates a mock bound to the test lifecycle.
func NewMockCompanyRepository(t *testing.T) *MockCompanyRepository {
	m := &MockCompanyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCompanyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.Company); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Company], error) {
	args := m.Called(ctx, page)

	return args.Get(0).(repository.Page[*entity.Company]), args.Error(1)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockListingTierRepository mocks repository.ListingTierRepository.
type MockListingTierRepository struct {
	mock.Mock
}

// NewMockListingTierRepository creates a mock bound to the test lifecycle.
func NewMockListingTierRepository(t *testing.T) *MockListingTierRepository {
	m := &MockListingTierRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockListingTierRepository) CreateTier(ctx context.Context, tier *entity.ListingTier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockListingTierRepository) FindTierByID(ctx context.Context, id uuid.UUID) (*entity.ListingTier, error) {
	args := m.Called(ctx, id)
	if tier, ok := args.Get(0).(*entity.ListingTier); ok {
		return tier, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockListingTierRepository) ListTiers(ctx context.Context) ([]*entity.ListingTier, error) {
	args := m.Called(ctx)
	if tiers, ok := args.Get(0).([]*entity.ListingTier); ok {
		return tiers, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockListingTierRepository) UpdateTier(ctx context.Context, tier *entity.ListingTier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockListingTierRepository) DeleteTier(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock bound to the test lifecycle.
func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]*entity.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockListingRepository mocks repository.ListingRepository.
type MockListingRepository struct {
	mock.Mock
}

// NewMockListingRepository creates a mock bound to the test lifecycle.
func NewMockListingRepository(t *testing.T) *MockListingRepository {
	m := &MockListingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockListingRepository) CreateListing(ctx context.Context, listing *entity.BusinessListing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.BusinessListing, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*entity.BusinessListing); ok {
		return l, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockListingRepository) UpdateListing(ctx context.Context, listing *entity.BusinessListing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) UpdateListingStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockListingRepository) UpdateListingImage(ctx context.Context, id uuid.UUID, imageID *uuid.UUID) error {
	return m.Called(ctx, id, imageID).Error(0)
}

func (m *MockListingRepository) ListListings(ctx context.Context, page repository.PageRequest, status entity.ReviewStatus) (repository.Page[*entity.BusinessListing], error) {
	args := m.Called(ctx, page, status)

	return args.Get(0).(repository.Page[*entity.BusinessListing]), args.Error(1)
}

func (m *MockListingRepository) ListListingsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.BusinessListing, error) {
	args := m.Called(ctx, companyID)
	if l, ok := args.Get(0).([]*entity.BusinessListing); ok {
		return l, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockListingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
