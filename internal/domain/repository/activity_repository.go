package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for activity group persistence.
var (
	// ErrActivityGroupNotFound is returned when an activity group is not found.
	ErrActivityGroupNotFound = errors.New("activity group not found")
	// ErrDuplicateMembership is returned when the learner is already a member.
	ErrDuplicateMembership = errors.New("learner already in activity group")
)

// ActivityRepository defines the interface for activity group operations.
type ActivityRepository interface {
	// CreateGroup persists a new activity group.
	CreateGroup(ctx context.Context, group *entity.ActivityGroup) error

	// FindGroupByID retrieves a group by its unique ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.ActivityGroup, error)

	// UpdateGroup persists changes to an existing group.
	UpdateGroup(ctx context.Context, group *entity.ActivityGroup) error

	// ListGroupsBySchool retrieves all activity groups for a school.
	ListGroupsBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.ActivityGroup, error)

	// AddMember enrolls a learner into a group.
	AddMember(ctx context.Context, groupID, learnerID uuid.UUID) error

	// RemoveMember removes a learner from a group.
	RemoveMember(ctx context.Context, groupID, learnerID uuid.UUID) error

	// ListMembers retrieves the learners enrolled in a group.
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Learner, error)

	// DeleteGroup removes a group and its memberships (soft delete).
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}
