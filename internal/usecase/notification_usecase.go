package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"

	"github.com/google/uuid"
)

// DeviceInfo carries the fields for registering a push device.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// NotificationUsecase defines the interface for notification use cases. The
// HTTP delivery uses the read/ack operations; the worker delivery consumes
// DeliverEvent after the publisher fans events back in.
type NotificationUsecase interface {
	// Notify persists a notification for each target user and publishes an
	// event for asynchronous device delivery.
	Notify(ctx context.Context, userIDs []uuid.UUID, kind, title, body string, data map[string]string) error

	// ListNotifications retrieves a page of a user's notifications.
	ListNotifications(ctx context.Context, userID uuid.UUID, query PageQuery) (repository.Page[*entity.Notification], error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// RegisterDevice registers or refreshes a push device for a user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// DeliverEvent pushes a notification event to the target users' devices
	// and deactivates tokens the provider reports as invalid.
	DeliverEvent(ctx context.Context, event *service.NotificationEvent) error
}
