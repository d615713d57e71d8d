package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrDisciplineRecordNotFound is returned when a disciplinary record is not found.
var ErrDisciplineRecordNotFound = errors.New("disciplinary record not found")

// DisciplineRepository defines the interface for disciplinary record operations.
type DisciplineRepository interface {
	// CreateRecord persists a new disciplinary record.
	CreateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error

	// FindRecordByID retrieves a record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.DisciplinaryRecord, error)

	// UpdateRecord persists changes to an existing record.
	UpdateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error

	// ListRecordsByLearner retrieves all records for a learner, newest first.
	ListRecordsByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.DisciplinaryRecord, error)

	// DeleteRecord removes a record by its ID (soft delete).
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}
