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

// disciplineService implements the DisciplineUsecase interface.
type disciplineService struct {
	disciplineRepo repository.DisciplineRepository
	learnerRepo    repository.LearnerRepository
}

// NewDisciplineService creates a new discipline service instance.
func NewDisciplineService(
	disciplineRepo repository.DisciplineRepository,
	learnerRepo repository.LearnerRepository,
) usecase.DisciplineUsecase {
	return &disciplineService{
		disciplineRepo: disciplineRepo,
		learnerRepo:    learnerRepo,
	}
}

// RecordIncident documents a new disciplinary incident.
func (s *disciplineService) RecordIncident(ctx context.Context, input *usecase.DisciplineInput) (*entity.DisciplinaryRecord, error) {
	if !input.Severity.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown severity " + string(input.Severity))
	}

	if _, err := s.learnerRepo.FindLearnerByID(ctx, input.LearnerID); err != nil {
		if errors.Is(err, repository.ErrLearnerNotFound) {
			return nil, domainerrors.ErrLearnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find learner by id")
	}

	now := time.Now().UTC()
	record := &entity.DisciplinaryRecord{
		ID:          uuid.New(),
		LearnerID:   input.LearnerID,
		Category:    input.Category,
		Severity:    input.Severity,
		Description: input.Description,
		OccurredAt:  input.OccurredAt,
		RecordedBy:  input.RecordedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.disciplineRepo.CreateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create disciplinary record")
	}

	return record, nil
}

// GetRecord retrieves a record by ID.
func (s *disciplineService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.DisciplinaryRecord, error) {
	record, err := s.disciplineRepo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDisciplineRecordNotFound) {
			return nil, domainerrors.ErrDisciplineRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find disciplinary record by id")
	}

	return record, nil
}

// UpdateRecord persists changes to a record.
func (s *disciplineService) UpdateRecord(ctx context.Context, id uuid.UUID, input *usecase.DisciplineInput) (*entity.DisciplinaryRecord, error) {
	if !input.Severity.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown severity " + string(input.Severity))
	}

	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Category = input.Category
	record.Severity = input.Severity
	record.Description = input.Description
	record.OccurredAt = input.OccurredAt
	record.UpdatedAt = time.Now().UTC()

	if err := s.disciplineRepo.UpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update disciplinary record")
	}

	return record, nil
}

// ResolveRecord closes a record with a resolution note.
func (s *disciplineService) ResolveRecord(ctx context.Context, id uuid.UUID, resolutionNote string) (*entity.DisciplinaryRecord, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Resolved = true
	record.ResolutionNote = resolutionNote
	record.UpdatedAt = time.Now().UTC()

	if err := s.disciplineRepo.UpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to resolve disciplinary record")
	}

	return record, nil
}

// ListRecordsByLearner retrieves all records for a learner, newest first.
func (s *disciplineService) ListRecordsByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.DisciplinaryRecord, error) {
	records, err := s.disciplineRepo.ListRecordsByLearner(ctx, learnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list disciplinary records")
	}

	return records, nil
}

// DeleteRecord removes a record.
func (s *disciplineService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := s.disciplineRepo.DeleteRecord(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDisciplineRecordNotFound) {
			return domainerrors.ErrDisciplineRecordNotFound
		}

		return errors.Wrap(err, "failed to delete disciplinary record")
	}

	return nil
}
