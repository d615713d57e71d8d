package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for direct-message operations.
type MessageRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessageByID retrieves a message by its unique ID.
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListInbox retrieves a page of messages received by a user, newest first.
	ListInbox(ctx context.Context, userID uuid.UUID, page PageRequest) (Page[*entity.Message], error)

	// ListOutbox retrieves a page of messages sent by a user, newest first.
	ListOutbox(ctx context.Context, userID uuid.UUID, page PageRequest) (Page[*entity.Message], error)

	// MarkRead marks a message as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// CountUnread returns the number of unread messages for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteMessage removes a message by its ID (soft delete).
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
