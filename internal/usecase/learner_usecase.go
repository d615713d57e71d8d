package usecase

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// LearnerInput carries the fields for enrolling or updating a learner.
type LearnerInput struct {
	SchoolID      uuid.UUID
	ClassID       *uuid.UUID
	AdmissionNo   string
	FirstName     string
	LastName      string
	BirthDate     time.Time
	GuardianName  string
	GuardianPhone string
	GuardianEmail string
}

// LearnerUsecase defines the interface for learner management use cases.
type LearnerUsecase interface {
	// EnrollLearner registers a learner at a school. If a class is given its
	// capacity is enforced.
	EnrollLearner(ctx context.Context, input *LearnerInput) (*entity.Learner, error)

	// GetLearner retrieves a learner by ID.
	GetLearner(ctx context.Context, id uuid.UUID) (*entity.Learner, error)

	// UpdateLearner persists changes to a learner, enforcing class capacity
	// when the learner moves class.
	UpdateLearner(ctx context.Context, id uuid.UUID, input *LearnerInput) (*entity.Learner, error)

	// AssignToClass moves a learner into a class, enforcing its capacity.
	AssignToClass(ctx context.Context, learnerID, classID uuid.UUID) error

	// ListLearners retrieves a page of a school's learners.
	ListLearners(ctx context.Context, schoolID uuid.UUID, query PageQuery) (repository.Page[*entity.Learner], error)

	// ListLearnersByClass retrieves all learners enrolled in a class.
	ListLearnersByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Learner, error)

	// DeleteLearner removes a learner.
	DeleteLearner(ctx context.Context, id uuid.UUID) error
}
