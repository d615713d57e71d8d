package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// filingService implements the FilingUsecase interface. Payload bytes live
// in the blob bucket; the repository holds only metadata. Replace follows
// the upload, swap, remove-old order so a failed swap never loses the
// previous payload.
type filingService struct {
	filingRepo repository.FilingRepository
	storage    service.FileStorage
	maxBytes   int64
	logger     *slog.Logger
}

// NewFilingService creates a new filing service instance.
func NewFilingService(
	filingRepo repository.FilingRepository,
	storage service.FileStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FilingUsecase {
	var maxBytes int64
	if cfg != nil && cfg.Storage != nil && cfg.Storage.MaxUploadMB > 0 {
		maxBytes = int64(cfg.Storage.MaxUploadMB) << 20
	}

	return &filingService{
		filingRepo: filingRepo,
		storage:    storage,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// Upload stores a payload and its metadata.
func (s *filingService) Upload(ctx context.Context, input *usecase.UploadInput) (*entity.FileUpload, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	upload := s.buildUpload(input)

	if err := s.storage.Save(ctx, upload.StorageKey, upload.ContentType, input.Data); err != nil {
		return nil, errors.Wrap(err, "failed to save blob")
	}

	if err := s.filingRepo.CreateUpload(ctx, upload); err != nil {
		// Best effort cleanup of the orphaned blob.
		if delErr := s.storage.Delete(ctx, upload.StorageKey); delErr != nil {
			s.logger.Warn("Failed to remove orphaned blob",
				slog.String("key", upload.StorageKey), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create upload metadata")
	}

	return upload, nil
}

// GetUpload retrieves upload metadata by ID.
func (s *filingService) GetUpload(ctx context.Context, id uuid.UUID) (*entity.FileUpload, error) {
	upload, err := s.filingRepo.FindUploadByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find upload by id")
	}

	return upload, nil
}

// Download retrieves the stored payload together with its metadata.
func (s *filingService) Download(ctx context.Context, id uuid.UUID) (*entity.FileUpload, []byte, error) {
	upload, err := s.GetUpload(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	payload, err := s.storage.Load(ctx, upload.StorageKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load blob")
	}

	return upload, payload, nil
}

// Replace stores a new payload for the same attachment target and removes
// the previous one once the swap succeeds.
func (s *filingService) Replace(ctx context.Context, id uuid.UUID, input *usecase.UploadInput) (*entity.FileUpload, error) {
	old, err := s.GetUpload(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement := &usecase.UploadInput{
		OwnerID:     input.OwnerID,
		EntityType:  old.EntityType,
		EntityID:    old.EntityID,
		Kind:        input.Kind,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Usage:       old.Usage,
		Data:        input.Data,
	}

	upload, err := s.Upload(ctx, replacement)
	if err != nil {
		return nil, err
	}

	if err := s.filingRepo.DeleteUpload(ctx, old.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete replaced upload metadata")
	}
	if err := s.storage.Delete(ctx, old.StorageKey); err != nil {
		s.logger.Warn("Failed to remove replaced blob",
			slog.String("key", old.StorageKey), slog.Any("error", err))
	}

	return upload, nil
}

// ListByEntity retrieves all uploads attached to an entity.
func (s *filingService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.FileUpload, error) {
	uploads, err := s.filingRepo.ListUploadsByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list uploads by entity")
	}

	return uploads, nil
}

// Delete removes an upload's metadata and payload.
func (s *filingService) Delete(ctx context.Context, id uuid.UUID) error {
	upload, err := s.GetUpload(ctx, id)
	if err != nil {
		return err
	}

	if err := s.filingRepo.DeleteUpload(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete upload metadata")
	}

	if err := s.storage.Delete(ctx, upload.StorageKey); err != nil {
		s.logger.Warn("Failed to remove blob",
			slog.String("key", upload.StorageKey), slog.Any("error", err))
	}

	return nil
}

func (s *filingService) validate(input *usecase.UploadInput) error {
	if !input.Kind.Valid() {
		return domainerrors.ErrUnsupportedFileKind.WithDetails(string(input.Kind))
	}
	if len(input.Data) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("file payload is empty")
	}
	if s.maxBytes > 0 && int64(len(input.Data)) > s.maxBytes {
		return domainerrors.ErrFileTooLarge
	}

	return nil
}

// buildUpload derives the storage key as <kind>/<uuid><ext> so blobs shard
// by kind and never collide on file name.
func (s *filingService) buildUpload(input *usecase.UploadInput) *entity.FileUpload {
	id := uuid.New()
	ext := strings.ToLower(path.Ext(input.FileName))

	return &entity.FileUpload{
		ID:          id,
		OwnerID:     input.OwnerID,
		EntityType:  input.EntityType,
		EntityID:    input.EntityID,
		Kind:        input.Kind,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
		StorageKey:  string(input.Kind) + "/" + id.String() + ext,
		Usage:       input.Usage,
		CreatedAt:   time.Now().UTC(),
	}
}
