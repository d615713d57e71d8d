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

func TestDisciplineService_RecordIncident_Success(t *testing.T) {
	mockDisciplineRepo := mockRepo.NewMockDisciplineRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewDisciplineService(mockDisciplineRepo, mockLearnerRepo)

	ctx := context.Background()
	learner := &entity.Learner{ID: uuid.New()}

	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)
	mockDisciplineRepo.On("CreateRecord", ctx, mock.MatchedBy(func(r *entity.DisciplinaryRecord) bool {
		return r.LearnerID == learner.ID && r.Severity == entity.SeverityMinor && !r.Resolved
	})).Return(nil)

	record, err := service.RecordIncident(ctx, &usecase.DisciplineInput{
		LearnerID:   learner.ID,
		Category:    "late arrival",
		Severity:    entity.SeverityMinor,
		Description: "Arrived 20 minutes after the bell.",
		OccurredAt:  time.Now(),
		RecordedBy:  uuid.New(),
	})
	require.NoError(t, err)
	assert.False(t, record.Resolved)
}

func TestDisciplineService_RecordIncident_UnknownSeverity(t *testing.T) {
	mockDisciplineRepo := mockRepo.NewMockDisciplineRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewDisciplineService(mockDisciplineRepo, mockLearnerRepo)

	_, err := service.RecordIncident(context.Background(), &usecase.DisciplineInput{
		LearnerID: uuid.New(),
		Severity:  entity.DisciplineSeverity("catastrophic"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity catastrophic")
	mockLearnerRepo.AssertNotCalled(t, "FindLearnerByID", mock.Anything, mock.Anything)
}

func TestDisciplineService_RecordIncident_LearnerNotFound(t *testing.T) {
	mockDisciplineRepo := mockRepo.NewMockDisciplineRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewDisciplineService(mockDisciplineRepo, mockLearnerRepo)

	ctx := context.Background()
	learnerID := uuid.New()
	mockLearnerRepo.On("FindLearnerByID", ctx, learnerID).Return(nil, repository.ErrLearnerNotFound)

	_, err := service.RecordIncident(ctx, &usecase.DisciplineInput{
		LearnerID: learnerID,
		Severity:  entity.SeveritySerious,
	})
	assert.ErrorIs(t, err, domainerrors.ErrLearnerNotFound)
}

func TestDisciplineService_ResolveRecord(t *testing.T) {
	mockDisciplineRepo := mockRepo.NewMockDisciplineRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewDisciplineService(mockDisciplineRepo, mockLearnerRepo)

	ctx := context.Background()
	record := &entity.DisciplinaryRecord{ID: uuid.New(), Severity: entity.SeveritySerious}

	mockDisciplineRepo.On("FindRecordByID", ctx, record.ID).Return(record, nil)
	mockDisciplineRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r *entity.DisciplinaryRecord) bool {
		return r.Resolved && r.ResolutionNote == "Detention served."
	})).Return(nil)

	resolved, err := service.ResolveRecord(ctx, record.ID, "Detention served.")
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
}
