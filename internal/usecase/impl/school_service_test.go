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

func TestSchoolService_CreateSchool_StartsActive(t *testing.T) {
	mockSchoolRepo := mockRepo.NewMockSchoolRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	mockStaffRepo := mockRepo.NewMockStaffRepository(t)
	service := NewSchoolService(mockSchoolRepo, mockClassRepo, mockStaffRepo)

	ctx := context.Background()
	mockSchoolRepo.On("CreateSchool", ctx, mock.MatchedBy(func(s *entity.School) bool {
		return s.Active && s.Name == "Greenfield Primary"
	})).Return(nil)

	school, err := service.CreateSchool(ctx, &usecase.SchoolInput{
		Name:  "Greenfield Primary",
		Email: "admin@greenfield.example",
	})
	require.NoError(t, err)
	assert.True(t, school.Active)
}

func TestSchoolService_CreateClass_SchoolMustExist(t *testing.T) {
	mockSchoolRepo := mockRepo.NewMockSchoolRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	mockStaffRepo := mockRepo.NewMockStaffRepository(t)
	service := NewSchoolService(mockSchoolRepo, mockClassRepo, mockStaffRepo)

	ctx := context.Background()
	schoolID := uuid.New()
	mockSchoolRepo.On("FindSchoolByID", ctx, schoolID).Return(nil, repository.ErrSchoolNotFound)

	_, err := service.CreateClass(ctx, &usecase.ClassInput{
		SchoolID: schoolID,
		Name:     "7A",
		Grade:    7,
		Year:     2026,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSchoolNotFound)
	mockClassRepo.AssertNotCalled(t, "CreateClass", mock.Anything, mock.Anything)
}

func TestSchoolService_CreateClass_Success(t *testing.T) {
	mockSchoolRepo := mockRepo.NewMockSchoolRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	mockStaffRepo := mockRepo.NewMockStaffRepository(t)
	service := NewSchoolService(mockSchoolRepo, mockClassRepo, mockStaffRepo)

	ctx := context.Background()
	school := &entity.School{ID: uuid.New(), Active: true}

	mockSchoolRepo.On("FindSchoolByID", ctx, school.ID).Return(school, nil)
	mockClassRepo.On("CreateClass", ctx, mock.MatchedBy(func(c *entity.SchoolClass) bool {
		return c.SchoolID == school.ID && c.Capacity == 35
	})).Return(nil)

	class, err := service.CreateClass(ctx, &usecase.ClassInput{
		SchoolID: school.ID,
		Name:     "7A",
		Grade:    7,
		Year:     2026,
		Capacity: 35,
	})
	require.NoError(t, err)
	assert.Equal(t, 35, class.Capacity)
}

func TestSchoolService_CreateStaff_SchoolMustExist(t *testing.T) {
	mockSchoolRepo := mockRepo.NewMockSchoolRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	mockStaffRepo := mockRepo.NewMockStaffRepository(t)
	service := NewSchoolService(mockSchoolRepo, mockClassRepo, mockStaffRepo)

	ctx := context.Background()
	schoolID := uuid.New()
	mockSchoolRepo.On("FindSchoolByID", ctx, schoolID).Return(nil, repository.ErrSchoolNotFound)

	_, err := service.CreateStaff(ctx, &usecase.StaffInput{
		SchoolID:  schoolID,
		FirstName: "Naledi",
		LastName:  "Mokoena",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSchoolNotFound)
}

func TestSchoolService_GetClass_NotFound(t *testing.T) {
	mockSchoolRepo := mockRepo.NewMockSchoolRepository(t)
	mockClassRepo := mockRepo.NewMockClassRepository(t)
	mockStaffRepo := mockRepo.NewMockStaffRepository(t)
	service := NewSchoolService(mockSchoolRepo, mockClassRepo, mockStaffRepo)

	ctx := context.Background()
	id := uuid.New()
	mockClassRepo.On("FindClassByID", ctx, id).Return(nil, repository.ErrClassNotFound)

	_, err := service.GetClass(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
}
