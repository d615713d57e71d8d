package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// SendMessageInput carries the fields for sending a direct message.
type SendMessageInput struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Subject     string
	Body        string
}

// MessageUsecase defines the interface for direct messaging use cases.
// Sending a message also raises a notification for the recipient.
type MessageUsecase interface {
	// SendMessage delivers a message and notifies the recipient.
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)

	// GetMessage retrieves a message; only sender and recipient may read it.
	GetMessage(ctx context.Context, id, requesterID uuid.UUID) (*entity.Message, error)

	// ListInbox retrieves a page of messages received by a user.
	ListInbox(ctx context.Context, userID uuid.UUID, query PageQuery) (repository.Page[*entity.Message], error)

	// ListOutbox retrieves a page of messages sent by a user.
	ListOutbox(ctx context.Context, userID uuid.UUID, query PageQuery) (repository.Page[*entity.Message], error)

	// MarkRead marks a message as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// CountUnread returns the number of unread messages for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
