package impl

import (
	"context"
	"testing"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"
	mockUsecase "conectone/internal/mocks/usecase"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_SendMessage_NotifiesRecipient(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockNotification := mockUsecase.NewMockNotificationUsecase(t)
	service := NewMessageService(mockMessageRepo, mockUserRepo, mockNotification)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Lindiwe"}
	recipient := &entity.User{ID: uuid.New(), Name: "Sipho"}

	mockUserRepo.On("FindUserByID", ctx, sender.ID).Return(sender, nil)
	mockUserRepo.On("FindUserByID", ctx, recipient.ID).Return(recipient, nil)

	var sentID uuid.UUID
	mockMessageRepo.On("CreateMessage", ctx, mock.MatchedBy(func(msg *entity.Message) bool {
		sentID = msg.ID

		return msg.SenderID == sender.ID && msg.RecipientID == recipient.ID && !msg.Read
	})).Return(nil)
	mockNotification.On("Notify", ctx,
		[]uuid.UUID{recipient.ID},
		"message",
		"New message from Lindiwe",
		"Sports day",
		mock.MatchedBy(func(data map[string]string) bool {
			return data["message_id"] == sentID.String()
		}),
	).Return(nil)

	message, err := service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Subject:     "Sports day",
		Body:        "Please confirm attendance.",
	})
	require.NoError(t, err)
	assert.Equal(t, sentID, message.ID)
}

func TestMessageService_SendMessage_UnknownRecipient(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockNotification := mockUsecase.NewMockNotificationUsecase(t)
	service := NewMessageService(mockMessageRepo, mockUserRepo, mockNotification)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Lindiwe"}
	recipientID := uuid.New()

	mockUserRepo.On("FindUserByID", ctx, sender.ID).Return(sender, nil)
	mockUserRepo.On("FindUserByID", ctx, recipientID).Return(nil, repository.ErrUserNotFound)

	_, err := service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:    sender.ID,
		RecipientID: recipientID,
		Subject:     "Hello",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	mockMessageRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestMessageService_GetMessage_ThirdPartyForbidden(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockNotification := mockUsecase.NewMockNotificationUsecase(t)
	service := NewMessageService(mockMessageRepo, mockUserRepo, mockNotification)

	ctx := context.Background()
	message := &entity.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: uuid.New()}
	mockMessageRepo.On("FindMessageByID", ctx, message.ID).Return(message, nil)

	_, err := service.GetMessage(ctx, message.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMessageService_GetMessage_RecipientAllowed(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockNotification := mockUsecase.NewMockNotificationUsecase(t)
	service := NewMessageService(mockMessageRepo, mockUserRepo, mockNotification)

	ctx := context.Background()
	message := &entity.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: uuid.New()}
	mockMessageRepo.On("FindMessageByID", ctx, message.ID).Return(message, nil)

	got, err := service.GetMessage(ctx, message.ID, message.RecipientID)
	require.NoError(t, err)
	assert.Equal(t, message, got)
}

func TestMessageService_MarkRead_NotFound(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockNotification := mockUsecase.NewMockNotificationUsecase(t)
	service := NewMessageService(mockMessageRepo, mockUserRepo, mockNotification)

	ctx := context.Background()
	id := uuid.New()
	mockMessageRepo.On("MarkRead", ctx, id).Return(repository.ErrMessageNotFound)

	assert.ErrorIs(t, service.MarkRead(ctx, id), domainerrors.ErrMessageNotFound)
}
