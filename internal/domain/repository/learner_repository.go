package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for learner persistence.
var (
	// ErrLearnerNotFound is returned when a learner is not found.
	ErrLearnerNotFound = errors.New("learner not found")
	// ErrDuplicateAdmissionNo is returned when the admission number is taken
	// within the school.
	ErrDuplicateAdmissionNo = errors.New("admission number already assigned")
)

// LearnerRepository defines the interface for learner database operations.
type LearnerRepository interface {
	// CreateLearner persists a new learner.
	CreateLearner(ctx context.Context, learner *entity.Learner) error

	// FindLearnerByID retrieves a learner by its unique ID.
	FindLearnerByID(ctx context.Context, id uuid.UUID) (*entity.Learner, error)

	// UpdateLearner persists changes to an existing learner.
	UpdateLearner(ctx context.Context, learner *entity.Learner) error

	// ListLearnersBySchool retrieves a page of learners for a school, with an
	// optional search term against name and admission number.
	ListLearnersBySchool(ctx context.Context, schoolID uuid.UUID, page PageRequest) (Page[*entity.Learner], error)

	// ListLearnersByClass retrieves all learners enrolled in a class, ordered
	// by last name.
	ListLearnersByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Learner, error)

	// DeleteLearner removes a learner by its ID (soft delete).
	DeleteLearner(ctx context.Context, id uuid.UUID) error
}
