package usecase

import (
	"context"
	"time"

	"conectone/internal/domain/entity"

	"github.com/google/uuid"
)

// DisciplineInput carries the fields for recording a disciplinary incident.
type DisciplineInput struct {
	LearnerID   uuid.UUID
	Category    string
	Severity    entity.DisciplineSeverity
	Description string
	OccurredAt  time.Time
	RecordedBy  uuid.UUID
}

// DisciplineUsecase defines the interface for disciplinary record use cases.
type DisciplineUsecase interface {
	// RecordIncident documents a new disciplinary incident.
	RecordIncident(ctx context.Context, input *DisciplineInput) (*entity.DisciplinaryRecord, error)

	// GetRecord retrieves a record by ID.
	GetRecord(ctx context.Context, id uuid.UUID) (*entity.DisciplinaryRecord, error)

	// UpdateRecord persists changes to a record.
	UpdateRecord(ctx context.Context, id uuid.UUID, input *DisciplineInput) (*entity.DisciplinaryRecord, error)

	// ResolveRecord closes a record with a resolution note.
	ResolveRecord(ctx context.Context, id uuid.UUID, resolutionNote string) (*entity.DisciplinaryRecord, error)

	// ListRecordsByLearner retrieves all records for a learner, newest first.
	ListRecordsByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.DisciplinaryRecord, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}
