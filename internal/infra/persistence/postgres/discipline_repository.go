package postgres

import (
	"context"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// disciplineRepository implements the repository.DisciplineRepository interface.
type disciplineRepository struct {
	db *gorm.DB
}

// NewDisciplineRepository is the constructor for disciplineRepository.
func NewDisciplineRepository(db *gorm.DB) repository.DisciplineRepository {
	return &disciplineRepository{
		db: db,
	}
}

// CreateRecord persists a new disciplinary record.
func (repo *disciplineRepository) CreateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error {
	recordM := fromDisciplineDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLearnerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create disciplinary record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindRecordByID retrieves a record by its unique ID.
func (repo *disciplineRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.DisciplinaryRecord, error) {
	var recordM model.DisciplinaryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDisciplineRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find disciplinary record by ID")
	}

	return toDisciplineDomain(&recordM), nil
}

// UpdateRecord persists changes to an existing record.
func (repo *disciplineRepository) UpdateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DisciplinaryRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"category":        record.Category,
			"severity":        string(record.Severity),
			"description":     record.Description,
			"occurred_at":     record.OccurredAt,
			"resolved":        record.Resolved,
			"resolution_note": record.ResolutionNote,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update disciplinary record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDisciplineRecordNotFound
	}

	return nil
}

// ListRecordsByLearner retrieves all records for a learner, newest first.
func (repo *disciplineRepository) ListRecordsByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.DisciplinaryRecord, error) {
	var recordModels []*model.DisciplinaryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("occurred_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list disciplinary records by learner")
	}

	records := make([]*entity.DisciplinaryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toDisciplineDomain(recordM))
	}

	return records, nil
}

// DeleteRecord removes a record by its ID (soft delete).
func (repo *disciplineRepository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DisciplinaryRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete disciplinary record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDisciplineRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDisciplineDomain converts a GORM DisciplinaryRecordModel to a domain DisciplinaryRecord entity.
func toDisciplineDomain(data *model.DisciplinaryRecordModel) *entity.DisciplinaryRecord {
	if data == nil {
		return nil
	}

	return &entity.DisciplinaryRecord{
		ID:             data.ID,
		LearnerID:      data.LearnerID,
		Category:       data.Category,
		Severity:       entity.DisciplineSeverity(data.Severity),
		Description:    data.Description,
		OccurredAt:     data.OccurredAt,
		RecordedBy:     data.RecordedBy,
		Resolved:       data.Resolved,
		ResolutionNote: data.ResolutionNote,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDisciplineDomain converts a domain DisciplinaryRecord entity to a GORM DisciplinaryRecordModel.
func fromDisciplineDomain(record *entity.DisciplinaryRecord) *model.DisciplinaryRecordModel {
	if record == nil {
		return nil
	}

	return &model.DisciplinaryRecordModel{
		ID:             record.ID,
		LearnerID:      record.LearnerID,
		Category:       record.Category,
		Severity:       string(record.Severity),
		Description:    record.Description,
		OccurredAt:     record.OccurredAt,
		RecordedBy:     record.RecordedBy,
		Resolved:       record.Resolved,
		ResolutionNote: record.ResolutionNote,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
