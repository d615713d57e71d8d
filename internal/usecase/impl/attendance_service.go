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

// attendanceService implements the AttendanceUsecase interface. All dates
// are truncated to UTC midnight before they reach the repository so the
// per-(learner, date) uniqueness holds regardless of the caller's timezone.
type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	classRepo      repository.ClassRepository
}

// NewAttendanceService creates a new attendance service instance.
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	classRepo repository.ClassRepository,
) usecase.AttendanceUsecase {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
	}
}

// CaptureRegister stores a class register for a day. Re-capturing the same
// register updates the existing records.
func (s *attendanceService) CaptureRegister(ctx context.Context, input *usecase.CaptureRegisterInput) ([]*entity.AttendanceRecord, error) {
	if len(input.Entries) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("register has no entries")
	}

	for _, entry := range input.Entries {
		if !entry.Status.Valid() {
			return nil, domainerrors.ErrInvalidAttendanceStatus.WithDetails(string(entry.Status))
		}
	}

	if _, err := s.classRepo.FindClassByID(ctx, input.ClassID); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class by id")
	}

	date := truncateToDay(input.Date)
	now := time.Now().UTC()

	records := make([]*entity.AttendanceRecord, 0, len(input.Entries))
	for _, entry := range input.Entries {
		records = append(records, &entity.AttendanceRecord{
			ID:         uuid.New(),
			LearnerID:  entry.LearnerID,
			ClassID:    input.ClassID,
			Date:       date,
			Status:     entry.Status,
			Note:       entry.Note,
			RecordedBy: input.RecordedBy,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := s.attendanceRepo.UpsertRecords(ctx, records); err != nil {
		return nil, errors.Wrap(err, "failed to upsert attendance records")
	}

	return records, nil
}

// GetRegister retrieves the register for a class on a date.
func (s *attendanceService) GetRegister(ctx context.Context, classID uuid.UUID, date time.Time) ([]*entity.AttendanceRecord, error) {
	records, err := s.attendanceRepo.FindRegister(ctx, classID, truncateToDay(date))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find register")
	}

	return records, nil
}

// GetLearnerHistory retrieves a learner's records within a date range.
func (s *attendanceService) GetLearnerHistory(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]*entity.AttendanceRecord, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindLearnerHistory(ctx, learnerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find learner attendance history")
	}

	return records, nil
}

// GetLearnerSummary aggregates a learner's attendance within a date range.
func (s *attendanceService) GetLearnerSummary(ctx context.Context, learnerID uuid.UUID, from, to time.Time) (*entity.AttendanceSummary, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}

	summary, err := s.attendanceRepo.SummarizeLearner(ctx, learnerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize learner attendance")
	}

	return summary, nil
}

// truncateToDay normalizes a timestamp to the calendar day in UTC.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return from, to, domainerrors.ErrValidationFailed.WithDetails("date range end precedes start")
	}

	return from, to, nil
}
