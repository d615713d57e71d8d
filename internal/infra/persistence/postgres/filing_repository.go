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

// filingRepository implements the repository.FilingRepository interface.
type filingRepository struct {
	db *gorm.DB
}

// NewFilingRepository is the constructor for filingRepository.
func NewFilingRepository(db *gorm.DB) repository.FilingRepository {
	return &filingRepository{
		db: db,
	}
}

// CreateUpload persists metadata for a stored blob.
func (repo *filingRepository) CreateUpload(ctx context.Context, upload *entity.FileUpload) error {
	uploadM := fromFileUploadDomain(upload)

	if err := repo.db.WithContext(ctx).Create(uploadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create file upload")
	}

	upload.ID = uploadM.ID
	upload.CreatedAt = uploadM.CreatedAt

	return nil
}

// FindUploadByID retrieves upload metadata by its unique ID.
func (repo *filingRepository) FindUploadByID(ctx context.Context, id uuid.UUID) (*entity.FileUpload, error) {
	var uploadM model.FileUploadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&uploadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file upload by ID")
	}

	return toFileUploadDomain(&uploadM), nil
}

// ListUploadsByEntity retrieves all uploads attached to an entity.
func (repo *filingRepository) ListUploadsByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.FileUpload, error) {
	var uploadModels []*model.FileUploadModel

	if err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&uploadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list file uploads by entity")
	}

	uploads := make([]*entity.FileUpload, 0, len(uploadModels))
	for _, uploadM := range uploadModels {
		uploads = append(uploads, toFileUploadDomain(uploadM))
	}

	return uploads, nil
}

// DeleteUpload removes upload metadata by its ID.
func (repo *filingRepository) DeleteUpload(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FileUploadModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete file upload")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFileUploadDomain converts a GORM FileUploadModel to a domain FileUpload entity.
func toFileUploadDomain(data *model.FileUploadModel) *entity.FileUpload {
	if data == nil {
		return nil
	}

	return &entity.FileUpload{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		EntityType:  data.EntityType,
		EntityID:    data.EntityID,
		Kind:        entity.FileKind(data.Kind),
		FileName:    data.FileName,
		ContentType: data.ContentType,
		Size:        data.Size,
		StorageKey:  data.StorageKey,
		Usage:       data.Usage,
		CreatedAt:   data.CreatedAt,
	}
}

// fromFileUploadDomain converts a domain FileUpload entity to a GORM FileUploadModel.
func fromFileUploadDomain(upload *entity.FileUpload) *model.FileUploadModel {
	if upload == nil {
		return nil
	}

	return &model.FileUploadModel{
		ID:          upload.ID,
		OwnerID:     upload.OwnerID,
		EntityType:  upload.EntityType,
		EntityID:    upload.EntityID,
		Kind:        string(upload.Kind),
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		StorageKey:  upload.StorageKey,
		Usage:       upload.Usage,
		CreatedAt:   upload.CreatedAt,
	}
}
