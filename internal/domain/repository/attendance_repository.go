package repository

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrAttendanceNotFound is returned when no register exists for the query.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceRepository defines the interface for attendance operations.
type AttendanceRepository interface {
	// UpsertRecords stores a batch of register entries, replacing any existing
	// record for the same (learner, date).
	UpsertRecords(ctx context.Context, records []*entity.AttendanceRecord) error

	// FindRegister retrieves the register for a class on a date.
	FindRegister(ctx context.Context, classID uuid.UUID, date time.Time) ([]*entity.AttendanceRecord, error)

	// FindLearnerHistory retrieves a learner's records within [from, to].
	FindLearnerHistory(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]*entity.AttendanceRecord, error)

	// SummarizeLearner aggregates a learner's attendance within [from, to].
	SummarizeLearner(ctx context.Context, learnerID uuid.UUID, from, to time.Time) (*entity.AttendanceSummary, error)
}
