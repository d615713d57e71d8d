// Package repository provides testify mocks for the repository interfaces.
package repository

import (
	"context"
	"testing"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock bound to the test lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.User], error) {
	args := m.Called(ctx, page)

	return args.Get(0).(repository.Page[*entity.User]), args.Error(1)
}

// MockAffiliateRepository mocks repository.AffiliateRepository.
type MockAffiliateRepository struct {
	mock.Mock
}

// NewMockAffiliateRepository creates a mock bound to the test lifecycle.
func NewMockAffiliateRepository(t *testing.T) *MockAffiliateRepository {
	m := &MockAffiliateRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAffiliateRepository) CreateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error {
	return m.Called(ctx, affiliate).Error(0)
}

func (m *MockAffiliateRepository) FindAffiliateByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*entity.Affiliate); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAffiliateRepository) FindAffiliateByCode(ctx context.Context, code string) (*entity.Affiliate, error) {
	args := m.Called(ctx, code)
	if a, ok := args.Get(0).(*entity.Affiliate); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAffiliateRepository) UpdateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error {
	return m.Called(ctx, affiliate).Error(0)
}

func (m *MockAffiliateRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount float64) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *MockAffiliateRepository) ListAffiliates(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Affiliate], error) {
	args := m.Called(ctx, page)

	return args.Get(0).(repository.Page[*entity.Affiliate]), args.Error(1)
}

func (m *MockAffiliateRepository) DeleteAffiliate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
