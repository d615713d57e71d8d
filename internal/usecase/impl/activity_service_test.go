package impl

import (
	"context"
	"testing"

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

func TestActivityService_AddMember_Success(t *testing.T) {
	mockActivityRepo := mockRepo.NewMockActivityRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewActivityService(mockActivityRepo, mockLearnerRepo)

	ctx := context.Background()
	group := &entity.ActivityGroup{ID: uuid.New(), Name: "Chess club"}
	learner := &entity.Learner{ID: uuid.New()}

	mockActivityRepo.On("FindGroupByID", ctx, group.ID).Return(group, nil)
	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)
	mockActivityRepo.On("AddMember", ctx, group.ID, learner.ID).Return(nil)

	require.NoError(t, service.AddMember(ctx, group.ID, learner.ID))
}

func TestActivityService_AddMember_DuplicateIsNoop(t *testing.T) {
	mockActivityRepo := mockRepo.NewMockActivityRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewActivityService(mockActivityRepo, mockLearnerRepo)

	ctx := context.Background()
	group := &entity.ActivityGroup{ID: uuid.New()}
	learner := &entity.Learner{ID: uuid.New()}

	mockActivityRepo.On("FindGroupByID", ctx, group.ID).Return(group, nil)
	mockLearnerRepo.On("FindLearnerByID", ctx, learner.ID).Return(learner, nil)
	mockActivityRepo.On("AddMember", ctx, group.ID, learner.ID).
		Return(repository.ErrDuplicateMembership)

	assert.NoError(t, service.AddMember(ctx, group.ID, learner.ID))
}

func TestActivityService_AddMember_GroupNotFound(t *testing.T) {
	mockActivityRepo := mockRepo.NewMockActivityRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewActivityService(mockActivityRepo, mockLearnerRepo)

	ctx := context.Background()
	groupID := uuid.New()
	mockActivityRepo.On("FindGroupByID", ctx, groupID).Return(nil, repository.ErrActivityGroupNotFound)

	err := service.AddMember(ctx, groupID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrActivityGroupNotFound)
	mockLearnerRepo.AssertNotCalled(t, "FindLearnerByID", mock.Anything, mock.Anything)
}

func TestActivityService_CreateGroup(t *testing.T) {
	mockActivityRepo := mockRepo.NewMockActivityRepository(t)
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	service := NewActivityService(mockActivityRepo, mockLearnerRepo)

	ctx := context.Background()
	schoolID := uuid.New()
	mockActivityRepo.On("CreateGroup", ctx, mock.MatchedBy(func(g *entity.ActivityGroup) bool {
		return g.SchoolID == schoolID && g.Name == "First XV"
	})).Return(nil)

	group, err := service.CreateGroup(ctx, &usecase.ActivityGroupInput{
		SchoolID:    schoolID,
		Name:        "First XV",
		Description: "Rugby first team",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, group.ID)
}
