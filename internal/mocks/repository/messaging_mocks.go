package repository

import (
	"context"
	"testing"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

// NewMockMessageRepository creates a mock bound to the test lifecycle.
func NewMockMessageRepository(t *testing.T) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if msg, ok := args.Get(0).(*entity.Message); ok {
		return msg, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) ListInbox(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Message], error) {
	args := m.Called(ctx, userID, page)

	return args.Get(0).(repository.Page[*entity.Message]), args.Error(1)
}

func (m *MockMessageRepository) ListOutbox(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Message], error) {
	args := m.Called(ctx, userID, page)

	return args.Get(0).(repository.Page[*entity.Message]), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates a mock bound to the test lifecycle.
func NewMockNotificationRepository(t *testing.T) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*entity.Notification); ok {
		return n, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Notification], error) {
	args := m.Called(ctx, userID, page)

	return args.Get(0).(repository.Page[*entity.Notification]), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

// MockDeviceRepository mocks repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates a mock bound to the test lifecycle.
func NewMockDeviceRepository(t *testing.T) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *MockDeviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)
	if d, ok := args.Get(0).([]*entity.UserDevice); ok {
		return d, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDeviceRepository) FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userIDs)
	if d, ok := args.Get(0).([]*entity.UserDevice); ok {
		return d, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDeviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockDeviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	return m.Called(ctx, tokens).Error(0)
}

// MockFilingRepository mocks repository.FilingRepository.
type MockFilingRepository struct {
	mock.Mock
}

// NewMockFilingRepository creates a mock bound to the test lifecycle.
func NewMockFilingRepository(t *testing.T) *MockFilingRepository {
	m := &MockFilingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFilingRepository) CreateUpload(ctx context.Context, upload *entity.FileUpload) error {
	return m.Called(ctx, upload).Error(0)
}

func (m *MockFilingRepository) FindUploadByID(ctx context.Context, id uuid.UUID) (*entity.FileUpload, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.FileUpload); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFilingRepository) ListUploadsByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.FileUpload, error) {
	args := m.Called(ctx, entityType, entityID)
	if u, ok := args.Get(0).([]*entity.FileUpload); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFilingRepository) DeleteUpload(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
