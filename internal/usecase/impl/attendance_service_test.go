package impl

import (
	"context"
	"testing"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttendanceService_CaptureRegister_TruncatesDate(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	johannesburg := time.FixedZone("SAST", 2*60*60)
	captured := time.Date(2026, 2, 17, 8, 45, 30, 0, johannesburg)
	wantDate := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	mockClassRepo.On("FindClassByID", ctx, classID).
		Return(&entity.SchoolClass{ID: classID}, nil)
	mockAttendanceRepo.On("UpsertRecords", ctx, mock.MatchedBy(func(records []*entity.AttendanceRecord) bool {
		return len(records) == 2 && records[0].Date.Equal(wantDate) && records[1].Date.Equal(wantDate)
	})).Return(nil)

	records, err := service.CaptureRegister(ctx, &usecase.CaptureRegisterInput{
		ClassID:    classID,
		Date:       captured,
		RecordedBy: uuid.New(),
		Entries: []usecase.RegisterEntry{
			{LearnerID: uuid.New(), Status: entity.AttendancePresent},
			{LearnerID: uuid.New(), Status: entity.AttendanceLate, Note: "bus delay"},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Date.Equal(wantDate))
}

func TestAttendanceService_CaptureRegister_EmptyEntries(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	_, err := service.CaptureRegister(context.Background(), &usecase.CaptureRegisterInput{
		ClassID: uuid.New(),
		Date:    time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrValidationFailed.Message())
}

func TestAttendanceService_CaptureRegister_InvalidStatus(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	_, err := service.CaptureRegister(context.Background(), &usecase.CaptureRegisterInput{
		ClassID: uuid.New(),
		Date:    time.Now(),
		Entries: []usecase.RegisterEntry{
			{LearnerID: uuid.New(), Status: entity.AttendanceStatus("asleep")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrInvalidAttendanceStatus.Message())
	mockClassRepo.AssertNotCalled(t, "FindClassByID", mock.Anything, mock.Anything)
}

func TestAttendanceService_CaptureRegister_ClassNotFound(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	mockClassRepo.On("FindClassByID", ctx, classID).Return(nil, repository.ErrClassNotFound)

	_, err := service.CaptureRegister(ctx, &usecase.CaptureRegisterInput{
		ClassID: classID,
		Date:    time.Now(),
		Entries: []usecase.RegisterEntry{
			{LearnerID: uuid.New(), Status: entity.AttendanceAbsent},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
}

func TestAttendanceService_GetLearnerHistory_InvertedRange(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.GetLearnerHistory(context.Background(), uuid.New(), from, to)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date range end precedes start")
}

func TestAttendanceService_GetLearnerSummary_NormalizesRange(t *testing.T) {
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := NewAttendanceService(mockAttendanceRepo, mockClassRepo)

	ctx := context.Background()
	learnerID := uuid.New()
	from := time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	summary := &entity.AttendanceSummary{LearnerID: learnerID, Present: 18, Absent: 1, Late: 2}
	mockAttendanceRepo.On("SummarizeLearner", ctx, learnerID, wantFrom, wantTo).Return(summary, nil)

	got, err := service.GetLearnerSummary(ctx, learnerID, from, to)
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
