package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "conectone/internal/delivery/context"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// fcmBatchLimit is the maximum number of tokens per multicast send.
const fcmBatchLimit = 500

// notificationService implements the NotificationUsecase interface. Notify
// persists notifications and publishes an event; DeliverEvent is the worker
// side that fans the event out to device tokens.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	publisher        service.EventPublisher
	pushSender       service.PushSender
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	publisher service.EventPublisher,
	pushSender service.PushSender,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		publisher:        publisher,
		pushSender:       pushSender,
		logger:           logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify persists a notification for each target user and publishes an
// event for asynchronous device delivery. Persistence failure aborts;
// publish failure is logged but does not fail the operation, the in-app
// notification is already stored.
func (s *notificationService) Notify(ctx context.Context, userIDs []uuid.UUID, kind, title, body string, data map[string]string) error {
	if len(userIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	firstID := uuid.Nil
	for _, userID := range userIDs {
		notification := &entity.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      kind,
			Title:     title,
			Body:      body,
			CreatedAt: now,
		}
		if firstID == uuid.Nil {
			firstID = notification.ID
		}

		if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}
	}

	event := &service.NotificationEvent{
		NotificationID: firstID.String(),
		UserIDs:        userIDs,
		Title:          title,
		Body:           body,
		Data:           data,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish notification event",
			slog.String("notificationID", event.NotificationID),
			slog.Any("error", err))
	}

	return nil
}

// ListNotifications retrieves a page of a user's notifications.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.Notification], error) {
	page, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Notification]{}, errors.Wrap(err, "failed to list notifications")
	}

	return page, nil
}

// MarkRead marks a notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// CountUnread returns the number of unread notifications for a user.
func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// RegisterDevice registers or refreshes a push device for a user.
func (s *notificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if device.FCMToken != info.FCMToken {
				if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
					return nil, errors.Wrap(err, "failed to update device token")
				}
				device.FCMToken = info.FCMToken
				device.UpdatedAt = time.Now().UTC()
			}

			return device, nil
		}
	}

	now := time.Now().UTC()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// DeliverEvent pushes a notification event to the target users' devices and
// deactivates tokens the provider reports as invalid.
func (s *notificationService) DeliverEvent(ctx context.Context, event *service.NotificationEvent) error {
	if event == nil || len(event.UserIDs) == 0 {
		return nil
	}

	if s.pushSender == nil {
		s.log(ctx).Warn("Push sender not configured, skipping device fan-out",
			slog.String("notificationID", event.NotificationID))

		return nil
	}

	devices, err := s.deviceRepo.FindDevicesForUsers(ctx, event.UserIDs)
	if err != nil {
		return errors.Wrap(err, "failed to find devices for users")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for notification",
			slog.String("notificationID", event.NotificationID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var invalid []string
	for start := 0; start < len(tokens); start += fcmBatchLimit {
		end := min(start+fcmBatchLimit, len(tokens))

		success, failure, invalidBatch, err := s.pushSender.SendBatch(ctx, tokens[start:end], event.Title, event.Body, event.Data)
		if err != nil {
			return errors.Wrap(err, "failed to send push batch")
		}

		s.log(ctx).Info("Push batch sent",
			slog.String("notificationID", event.NotificationID),
			slog.Int("success", success),
			slog.Int("failure", failure))

		invalid = append(invalid, invalidBatch...)
	}

	if len(invalid) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalid); err != nil {
			return errors.Wrap(err, "failed to deactivate invalid tokens")
		}

		s.log(ctx).Info("Deactivated invalid device tokens", slog.Int("count", len(invalid)))
	}

	return nil
}
