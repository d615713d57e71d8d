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

func learnerTestService(learnerRepo *mockRepo.MockLearnerRepository, classRepo *mockRepo.MockClassRepository) usecase.LearnerUsecase {
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{Learners: learnerRepo, Classes: classRepo},
	}

	return NewLearnerService(learnerRepo, txManager)
}

func learnerInput(schoolID uuid.UUID, classID *uuid.UUID, admissionNo string) *usecase.LearnerInput {
	return &usecase.LearnerInput{
		SchoolID:     schoolID,
		ClassID:      classID,
		AdmissionNo:  admissionNo,
		FirstName:    "Thabo",
		LastName:     "Nkosi",
		BirthDate:    time.Date(2014, 3, 12, 0, 0, 0, 0, time.UTC),
		GuardianName: "P Nkosi",
	}
}

func TestLearnerService_EnrollLearner_Success(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	schoolID := uuid.New()
	mockLearnerRepo.On("CreateLearner", ctx, mock.MatchedBy(func(l *entity.Learner) bool {
		return l.SchoolID == schoolID && l.AdmissionNo == "ADM-0042"
	})).Return(nil)

	learner, err := service.EnrollLearner(ctx, learnerInput(schoolID, nil, "ADM-0042"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, learner.ID)
}

func TestLearnerService_EnrollLearner_ClassFull(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	mockClassRepo.On("FindClassByID", ctx, classID).
		Return(&entity.SchoolClass{ID: classID, Capacity: 30}, nil)
	mockClassRepo.On("CountLearnersInClass", ctx, classID).Return(int64(30), nil)

	_, err := service.EnrollLearner(ctx, learnerInput(uuid.New(), &classID, "ADM-0043"))
	assert.ErrorIs(t, err, domainerrors.ErrClassFull)
	mockLearnerRepo.AssertNotCalled(t, "CreateLearner", mock.Anything, mock.Anything)
}

func TestLearnerService_EnrollLearner_ZeroCapacityIsUnlimited(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	mockClassRepo.On("FindClassByID", ctx, classID).
		Return(&entity.SchoolClass{ID: classID, Capacity: 0}, nil)
	mockLearnerRepo.On("CreateLearner", ctx, mock.AnythingOfType("*entity.Learner")).Return(nil)

	_, err := service.EnrollLearner(ctx, learnerInput(uuid.New(), &classID, "ADM-0044"))
	require.NoError(t, err)
	mockClassRepo.AssertNotCalled(t, "CountLearnersInClass", mock.Anything, mock.Anything)
}

func TestLearnerService_EnrollLearner_DuplicateAdmissionNo(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	mockLearnerRepo.On("CreateLearner", ctx, mock.AnythingOfType("*entity.Learner")).
		Return(repository.ErrDuplicateAdmissionNo)

	_, err := service.EnrollLearner(ctx, learnerInput(uuid.New(), nil, "ADM-0042"))
	assert.ErrorIs(t, err, domainerrors.ErrAdmissionNoTaken)
}

func TestLearnerService_AssignToClass_SameClassIsNoop(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	learner := &entity.Learner{ID: uuid.New(), ClassID: &classID}
	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)

	require.NoError(t, service.AssignToClass(ctx, learner.ID, classID))
	mockLearnerRepo.AssertNotCalled(t, "UpdateLearner", mock.Anything, mock.Anything)
}

func TestLearnerService_AssignToClass_EnforcesCapacity(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	learner := &entity.Learner{ID: uuid.New()}

	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)
	mockClassRepo.On("FindClassByID", ctx, classID).
		Return(&entity.SchoolClass{ID: classID, Capacity: 25}, nil)
	mockClassRepo.On("CountLearnersInClass", ctx, classID).Return(int64(12), nil)
	mockLearnerRepo.On("UpdateLearner", ctx, mock.MatchedBy(func(l *entity.Learner) bool {
		return l.ClassID != nil && *l.ClassID == classID
	})).Return(nil)

	require.NoError(t, service.AssignToClass(ctx, learner.ID, classID))
}

func TestLearnerService_UpdateLearner_MoveToMissingClass(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	service := learnerTestService(mockLearnerRepo, mockClassRepo)

	ctx := context.Background()
	classID := uuid.New()
	learner := &entity.Learner{ID: uuid.New()}

	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)
	mockClassRepo.On("FindClassByID", ctx, classID).Return(nil, repository.ErrClassNotFound)

	_, err := service.UpdateLearner(ctx, learner.ID, learnerInput(uuid.New(), &classID, "ADM-0042"))
	assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
}
