// Package usecase provides testify mocks for use case interfaces consumed
// by other use cases.
package usecase

import (
	"context"
	"testing"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationUsecase mocks usecase.NotificationUsecase.
type MockNotificationUsecase struct {
	mock.Mock
}

// NewMockNotificationUsecase creates a mock bound to the test lifecycle.
func NewMockNotificationUsecase(t *testing.T) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationUsecase) Notify(ctx context.Context, userIDs []uuid.UUID, kind, title, body string, data map[string]string) error {
	return m.Called(ctx, userIDs, kind, title, body, data).Error(0)
}

func (m *MockNotificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.Notification], error) {
	args := m.Called(ctx, userID, query)

	return args.Get(0).(repository.Page[*entity.Notification]), args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationUsecase) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	args := m.Called(ctx, userID, info)
	if d, ok := args.Get(0).(*entity.UserDevice); ok {
		return d, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNotificationUsecase) DeliverEvent(ctx context.Context, event *service.NotificationEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockAdvertUsecase mocks usecase.AdvertUsecase.
type MockAdvertUsecase struct {
	mock.Mock
}

// NewMockAdvertUsecase creates a mock bound to the test lifecycle.
func NewMockAdvertUsecase(t *testing.T) *MockAdvertUsecase {
	m := &MockAdvertUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdvertUsecase) CreateAdvert(ctx context.Context, input *usecase.AdvertInput) (*entity.Advert, error) {
	args := m.Called(ctx, input)
	if a, ok := args.Get(0).(*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertUsecase) GetAdvert(ctx context.Context, id uuid.UUID) (*entity.Advert, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertUsecase) UpdateAdvert(ctx context.Context, id uuid.UUID, input *usecase.AdvertInput) (*entity.Advert, error) {
	args := m.Called(ctx, id, input)
	if a, ok := args.Get(0).(*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertUsecase) ReviewAdvert(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.Advert, error) {
	args := m.Called(ctx, id, status)
	if a, ok := args.Get(0).(*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertUsecase) ListAdverts(ctx context.Context, query usecase.PageQuery, status entity.ReviewStatus) (repository.Page[*entity.Advert], error) {
	args := m.Called(ctx, query, status)

	return args.Get(0).(repository.Page[*entity.Advert]), args.Error(1)
}

func (m *MockAdvertUsecase) ListAdvertsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advert, error) {
	args := m.Called(ctx, ownerID)
	if a, ok := args.Get(0).([]*entity.Advert); ok {
		return a, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdvertUsecase) AttachImage(ctx context.Context, id, imageID uuid.UUID) error {
	return m.Called(ctx, id, imageID).Error(0)
}

func (m *MockAdvertUsecase) DeleteAdvert(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
