package usecase

import (
	"context"
	"time"

	"conectone/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterEntry is one learner's outcome when capturing a class register.
type RegisterEntry struct {
	LearnerID uuid.UUID
	Status    entity.AttendanceStatus
	Note      string
}

// CaptureRegisterInput carries a full class register for one day.
type CaptureRegisterInput struct {
	ClassID    uuid.UUID
	Date       time.Time
	RecordedBy uuid.UUID
	Entries    []RegisterEntry
}

// AttendanceUsecase defines the interface for attendance use cases. Dates
// are treated as date-only; capturing the same register twice updates the
// existing records.
type AttendanceUsecase interface {
	// CaptureRegister stores a class register for a day.
	CaptureRegister(ctx context.Context, input *CaptureRegisterInput) ([]*entity.AttendanceRecord, error)

	// GetRegister retrieves the register for a class on a date.
	GetRegister(ctx context.Context, classID uuid.UUID, date time.Time) ([]*entity.AttendanceRecord, error)

	// GetLearnerHistory retrieves a learner's records within a date range.
	GetLearnerHistory(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]*entity.AttendanceRecord, error)

	// GetLearnerSummary aggregates a learner's attendance within a date range.
	GetLearnerSummary(ctx context.Context, learnerID uuid.UUID, from, to time.Time) (*entity.AttendanceSummary, error)
}
