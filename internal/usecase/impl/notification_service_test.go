package impl

import (
	"context"
	"fmt"
	"testing"

	deliverycontext "conectone/internal/delivery/context"
	"conectone/internal/domain/entity"
	"conectone/internal/domain/service"
	mockRepo "conectone/internal/mocks/repository"
	mockSvc "conectone/internal/mocks/service"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Notify_PersistsAndPublishes(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	mockNotifRepo.On("CreateNotification", ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Kind == "advert_review" && n.Title == "Advert approved"
	})).Return(nil).Times(2)
	mockPublisher.On("PublishNotificationEvent", ctx, mock.MatchedBy(func(event *service.NotificationEvent) bool {
		return len(event.UserIDs) == 2 && event.RequestID == "req-123" && event.NotificationID != uuid.Nil.String()
	})).Return(nil)

	err := svc.Notify(ctx, userIDs, "advert_review", "Advert approved", "Your advert is live.", nil)
	require.NoError(t, err)
}

func TestNotificationService_Notify_PublishFailureIsNotFatal(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := context.Background()
	mockNotifRepo.On("CreateNotification", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	mockPublisher.On("PublishNotificationEvent", ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(assert.AnError)

	err := svc.Notify(ctx, []uuid.UUID{uuid.New()}, "message", "New message", "", nil)
	assert.NoError(t, err, "stored notification survives a publish failure")
}

func TestNotificationService_Notify_NoTargetsIsNoop(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	require.NoError(t, svc.Notify(context.Background(), nil, "message", "t", "b", nil))
	mockNotifRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_RegisterDevice_RefreshesToken(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		DeviceID: "pixel-8",
		FCMToken: "old-token",
	}

	mockDeviceRepo.On("FindDevicesByUser", ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	mockDeviceRepo.On("UpdateFCMToken", ctx, existing.ID, "new-token").Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		DeviceID: "pixel-8",
		FCMToken: "new-token",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-token", device.FCMToken)
	mockDeviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestNotificationService_RegisterDevice_NewDevice(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.On("FindDevicesByUser", ctx, userID).Return(nil, nil)
	mockDeviceRepo.On("CreateDevice", ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
		return d.UserID == userID && d.IsActive && d.Platform == "ios"
	})).Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		DeviceID: "iphone-15",
		FCMToken: "tok",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.True(t, device.IsActive)
}

func TestNotificationService_DeliverEvent_ChunksBatches(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	devices := make([]*entity.UserDevice, 0, fcmBatchLimit+1)
	for i := 0; i < fcmBatchLimit+1; i++ {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%04d", i),
			IsActive: true,
		})
	}

	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserIDs:        []uuid.UUID{userID},
		Title:          "School notice",
		Body:           "Early closing on Friday",
	}

	mockDeviceRepo.On("FindDevicesForUsers", ctx, event.UserIDs).Return(devices, nil)
	mockSender.On("SendBatch", ctx, mock.MatchedBy(func(tokens []string) bool {
		return len(tokens) == fcmBatchLimit
	}), event.Title, event.Body, event.Data).Return(fcmBatchLimit-1, 1, []string{"token-0007"}, nil)
	mockSender.On("SendBatch", ctx, mock.MatchedBy(func(tokens []string) bool {
		return len(tokens) == 1
	}), event.Title, event.Body, event.Data).Return(1, 0, nil, nil)
	mockDeviceRepo.On("DeactivateByTokens", ctx, []string{"token-0007"}).Return(nil)

	require.NoError(t, svc.DeliverEvent(ctx, event))
}

func TestNotificationService_DeliverEvent_NoDevicesIsNoop(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	ctx := context.Background()
	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserIDs:        []uuid.UUID{uuid.New()},
	}
	mockDeviceRepo.On("FindDevicesForUsers", ctx, event.UserIDs).Return(nil, nil)

	require.NoError(t, svc.DeliverEvent(ctx, event))
	mockSender.AssertNotCalled(t, "SendBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_DeliverEvent_NoSenderSkipsFanOut(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, nil, discardLogger())

	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserIDs:        []uuid.UUID{uuid.New()},
		Title:          "School notice",
	}

	require.NoError(t, svc.DeliverEvent(context.Background(), event))
	mockDeviceRepo.AssertNotCalled(t, "FindDevicesForUsers", mock.Anything, mock.Anything)
}

func TestNotificationService_DeliverEvent_NilEvent(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockSender := mockSvc.NewMockPushSender(t)
	svc := NewNotificationService(mockNotifRepo, mockDeviceRepo, mockPublisher, mockSender, discardLogger())

	require.NoError(t, svc.DeliverEvent(context.Background(), nil))
}
