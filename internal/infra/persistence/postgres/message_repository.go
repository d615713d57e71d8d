package postgres

import (
	"context"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a new message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.SentAt = messageM.SentAt

	return nil
}

// FindMessageByID retrieves a message by its unique ID.
func (repo *messageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// ListInbox retrieves a page of messages received by a user, newest first.
func (repo *messageRepository) ListInbox(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Message], error) {
	return repo.listMessages(ctx, "recipient_id = ?", userID, page)
}

// ListOutbox retrieves a page of messages sent by a user, newest first.
func (repo *messageRepository) ListOutbox(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Message], error) {
	return repo.listMessages(ctx, "sender_id = ?", userID, page)
}

func (repo *messageRepository) listMessages(ctx context.Context, cond string, userID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Message], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where(cond, userID)
	if page.Search != "" {
		query = query.Where("subject ILIKE ?", "%"+page.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.Message]{}, errors.Wrap(err, "failed to count messages")
	}

	var messageModels []*model.MessageModel
	if err := query.
		Order("sent_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&messageModels).Error; err != nil {
		return repository.Page[*entity.Message]{}, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return repository.Page[*entity.Message]{
		Items:       messages,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// MarkRead marks a message as read.
func (repo *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// CountUnread returns the number of unread messages for a user.
func (repo *messageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// DeleteMessage removes a message by its ID (soft delete).
func (repo *messageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MessageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Subject:     data.Subject,
		Body:        data.Body,
		Read:        data.IsRead,
		SentAt:      data.SentAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(message *entity.Message) *model.MessageModel {
	if message == nil {
		return nil
	}

	return &model.MessageModel{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Subject:     message.Subject,
		Body:        message.Body,
		IsRead:      message.Read,
		SentAt:      message.SentAt,
	}
}
