package impl

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	learnerRepo  repository.LearnerRepository
}

// NewActivityService creates a new activity service instance.
func NewActivityService(
	activityRepo repository.ActivityRepository,
	learnerRepo repository.LearnerRepository,
) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: activityRepo,
		learnerRepo:  learnerRepo,
	}
}

// CreateGroup adds an activity group to a school.
func (s *activityService) CreateGroup(ctx context.Context, input *usecase.ActivityGroupInput) (*entity.ActivityGroup, error) {
	now := time.Now().UTC()
	group := &entity.ActivityGroup{
		ID:          uuid.New(),
		SchoolID:    input.SchoolID,
		Name:        input.Name,
		Description: input.Description,
		LeadStaffID: input.LeadStaffID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.activityRepo.CreateGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create activity group")
	}

	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *activityService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.ActivityGroup, error) {
	group, err := s.activityRepo.FindGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityGroupNotFound) {
			return nil, domainerrors.ErrActivityGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity group by id")
	}

	return group, nil
}

// UpdateGroup persists changes to a group.
func (s *activityService) UpdateGroup(ctx context.Context, id uuid.UUID, input *usecase.ActivityGroupInput) (*entity.ActivityGroup, error) {
	group, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	group.Name = input.Name
	group.Description = input.Description
	group.LeadStaffID = input.LeadStaffID
	group.UpdatedAt = time.Now().UTC()

	if err := s.activityRepo.UpdateGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to update activity group")
	}

	return group, nil
}

// ListGroups retrieves all activity groups for a school.
func (s *activityService) ListGroups(ctx context.Context, schoolID uuid.UUID) ([]*entity.ActivityGroup, error) {
	groups, err := s.activityRepo.ListGroupsBySchool(ctx, schoolID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity groups")
	}

	return groups, nil
}

// AddMember enrolls a learner into a group. Adding an existing member is a
// no-op.
func (s *activityService) AddMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.learnerRepo.FindLearnerByID(ctx, learnerID); err != nil {
		if errors.Is(err, repository.ErrLearnerNotFound) {
			return domainerrors.ErrLearnerNotFound
		}

		return errors.Wrap(err, "failed to find learner by id")
	}

	if err := s.activityRepo.AddMember(ctx, groupID, learnerID); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return nil
		}

		return errors.Wrap(err, "failed to add activity group member")
	}

	return nil
}

// RemoveMember removes a learner from a group.
func (s *activityService) RemoveMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	if err := s.activityRepo.RemoveMember(ctx, groupID, learnerID); err != nil {
		return errors.Wrap(err, "failed to remove activity group member")
	}

	return nil
}

// ListMembers retrieves the learners enrolled in a group.
func (s *activityService) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Learner, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	members, err := s.activityRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity group members")
	}

	return members, nil
}

// DeleteGroup removes a group and its memberships.
func (s *activityService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := s.activityRepo.DeleteGroup(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityGroupNotFound) {
			return domainerrors.ErrActivityGroupNotFound
		}

		return errors.Wrap(err, "failed to delete activity group")
	}

	return nil
}
