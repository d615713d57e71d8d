package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationEvent is the payload published when a notification should be
// delivered to a user's devices. The worker delivery consumes these events.
type NotificationEvent struct {
	NotificationID string            `json:"notification_id"`
	UserIDs        []uuid.UUID       `json:"user_ids"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data,omitempty"`

	// RequestID carries the originating request id for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing notification events.
type EventPublisher interface {
	// PublishNotificationEvent publishes an event for asynchronous delivery.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases publisher resources.
	Close() error
}
