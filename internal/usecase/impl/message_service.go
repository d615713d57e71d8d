package impl

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// notificationKindMessage tags notifications raised by direct messages.
const notificationKindMessage = "message"

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	notification usecase.NotificationUsecase
}

// NewMessageService creates a new message service instance.
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notification usecase.NotificationUsecase,
) usecase.MessageUsecase {
	return &messageService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

// SendMessage delivers a message and notifies the recipient.
func (s *messageService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	sender, err := s.userRepo.FindUserByID(ctx, input.SenderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find sender")
	}

	if _, err := s.userRepo.FindUserByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	message := &entity.Message{
		ID:          uuid.New(),
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Subject:     input.Subject,
		Body:        input.Body,
		SentAt:      time.Now().UTC(),
	}

	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	if err := s.notification.Notify(ctx,
		[]uuid.UUID{input.RecipientID},
		notificationKindMessage,
		"New message from "+sender.Name,
		input.Subject,
		map[string]string{"message_id": message.ID.String()},
	); err != nil {
		return nil, errors.Wrap(err, "failed to notify recipient")
	}

	return message, nil
}

// GetMessage retrieves a message; only sender and recipient may read it.
func (s *messageService) GetMessage(ctx context.Context, id, requesterID uuid.UUID) (*entity.Message, error) {
	message, err := s.messageRepo.FindMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	if message.SenderID != requesterID && message.RecipientID != requesterID {
		return nil, domainerrors.ErrForbidden
	}

	return message, nil
}

// ListInbox retrieves a page of messages received by a user.
func (s *messageService) ListInbox(ctx context.Context, userID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.Message], error) {
	page, err := s.messageRepo.ListInbox(ctx, userID, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Message]{}, errors.Wrap(err, "failed to list inbox")
	}

	return page, nil
}

// ListOutbox retrieves a page of messages sent by a user.
func (s *messageService) ListOutbox(ctx context.Context, userID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.Message], error) {
	page, err := s.messageRepo.ListOutbox(ctx, userID, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Message]{}, errors.Wrap(err, "failed to list outbox")
	}

	return page, nil
}

// MarkRead marks a message as read.
func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}

// CountUnread returns the number of unread messages for a user.
func (s *messageService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// DeleteMessage removes a message.
func (s *messageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.messageRepo.DeleteMessage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}
