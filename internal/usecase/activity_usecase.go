package usecase

import (
	"context"

	"conectone/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityGroupInput carries the fields for creating or updating a group.
type ActivityGroupInput struct {
	SchoolID    uuid.UUID
	Name        string
	Description string
	LeadStaffID *uuid.UUID
}

// ActivityUsecase defines the interface for extracurricular group use cases.
type ActivityUsecase interface {
	// CreateGroup adds an activity group to a school.
	CreateGroup(ctx context.Context, input *ActivityGroupInput) (*entity.ActivityGroup, error)

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id uuid.UUID) (*entity.ActivityGroup, error)

	// UpdateGroup persists changes to a group.
	UpdateGroup(ctx context.Context, id uuid.UUID, input *ActivityGroupInput) (*entity.ActivityGroup, error)

	// ListGroups retrieves all activity groups for a school.
	ListGroups(ctx context.Context, schoolID uuid.UUID) ([]*entity.ActivityGroup, error)

	// AddMember enrolls a learner into a group.
	AddMember(ctx context.Context, groupID, learnerID uuid.UUID) error

	// RemoveMember removes a learner from a group.
	RemoveMember(ctx context.Context, groupID, learnerID uuid.UUID) error

	// ListMembers retrieves the learners enrolled in a group.
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Learner, error)

	// DeleteGroup removes a group and its memberships.
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}
