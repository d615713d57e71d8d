package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	mockRepo "conectone/internal/mocks/repository"
	mockSvc "conectone/internal/mocks/service"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func filingTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:   "mem://uploads",
			MaxUploadMB: 1,
		},
	}
}

func uploadInput(kind entity.FileKind, fileName string, data []byte) *usecase.UploadInput {
	return &usecase.UploadInput{
		OwnerID:     uuid.New(),
		EntityType:  "advert",
		EntityID:    uuid.New(),
		Kind:        kind,
		FileName:    fileName,
		ContentType: "image/png",
		Usage:       "banner",
		Data:        data,
	}
}

func TestFilingService_Upload_Success(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	ctx := context.Background()
	data := []byte("png-bytes")

	mockStorage.On("Save", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "image/") && strings.HasSuffix(key, ".png")
	}), "image/png", data).Return(nil)
	mockFilingRepo.On("CreateUpload", ctx, mock.MatchedBy(func(u *entity.FileUpload) bool {
		return u.Size == int64(len(data)) && u.FileName == "Banner.PNG"
	})).Return(nil)

	upload, err := service.Upload(ctx, uploadInput(entity.FileKindImage, "Banner.PNG", data))
	require.NoError(t, err)
	assert.Equal(t, "image/"+upload.ID.String()+".png", upload.StorageKey)
}

func TestFilingService_Upload_UnsupportedKind(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	_, err := service.Upload(context.Background(), uploadInput(entity.FileKind("spreadsheet"), "a.xlsx", []byte("x")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrUnsupportedFileKind.Message())
	mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFilingService_Upload_TooLarge(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	oversized := bytes.Repeat([]byte("a"), (1<<20)+1)
	_, err := service.Upload(context.Background(), uploadInput(entity.FileKindImage, "big.png", oversized))
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestFilingService_Upload_EmptyPayload(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	_, err := service.Upload(context.Background(), uploadInput(entity.FileKindDocument, "empty.pdf", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrValidationFailed.Message())
}

func TestFilingService_Upload_MetadataFailureCleansBlob(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	ctx := context.Background()
	data := []byte("payload")

	mockStorage.On("Save", ctx, mock.AnythingOfType("string"), "image/png", data).Return(nil)
	mockFilingRepo.On("CreateUpload", ctx, mock.AnythingOfType("*entity.FileUpload")).Return(assert.AnError)
	mockStorage.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := service.Upload(ctx, uploadInput(entity.FileKindImage, "a.png", data))
	require.Error(t, err)
}

func TestFilingService_Download(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	ctx := context.Background()
	upload := &entity.FileUpload{ID: uuid.New(), StorageKey: "image/abc.png"}
	payload := []byte("png-bytes")

	mockFilingRepo.On("FindUploadByID", ctx, upload.ID).Return(upload, nil)
	mockStorage.On("Load", ctx, upload.StorageKey).Return(payload, nil)

	got, data, err := service.Download(ctx, upload.ID)
	require.NoError(t, err)
	assert.Equal(t, upload, got)
	assert.Equal(t, payload, data)
}

func TestFilingService_Replace_RemovesOldPayload(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	ctx := context.Background()
	entityID := uuid.New()
	old := &entity.FileUpload{
		ID:         uuid.New(),
		EntityType: "listing",
		EntityID:   entityID,
		Kind:       entity.FileKindImage,
		StorageKey: "image/old.png",
		Usage:      "logo",
	}
	data := []byte("new-bytes")

	mockFilingRepo.On("FindUploadByID", ctx, old.ID).Return(old, nil)
	mockStorage.On("Save", ctx, mock.AnythingOfType("string"), "image/png", data).Return(nil)
	mockFilingRepo.On("CreateUpload", ctx, mock.MatchedBy(func(u *entity.FileUpload) bool {
		return u.EntityType == "listing" && u.EntityID == entityID && u.Usage == "logo"
	})).Return(nil)
	mockFilingRepo.On("DeleteUpload", ctx, old.ID).Return(nil)
	mockStorage.On("Delete", ctx, old.StorageKey).Return(nil)

	input := uploadInput(entity.FileKindImage, "new.png", data)
	upload, err := service.Replace(ctx, old.ID, input)
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, upload.ID)
	assert.Equal(t, "listing", upload.EntityType)
}

func TestFilingService_Delete_BlobFailureIsNotFatal(t *testing.T) {
	mockFilingRepo := mockRepo.NewMockFilingRepository(t)
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewFilingService(mockFilingRepo, mockStorage, filingTestConfig(), discardLogger())

	ctx := context.Background()
	upload := &entity.FileUpload{ID: uuid.New(), StorageKey: "document/report.pdf"}

	mockFilingRepo.On("FindUploadByID", ctx, upload.ID).Return(upload, nil)
	mockFilingRepo.On("DeleteUpload", ctx, upload.ID).Return(nil)
	mockStorage.On("Delete", ctx, upload.StorageKey).Return(assert.AnError)

	assert.NoError(t, service.Delete(ctx, upload.ID))
}
