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

// learnerRepository implements the repository.LearnerRepository interface.
type learnerRepository struct {
	db *gorm.DB
}

// NewLearnerRepository is the constructor for learnerRepository.
func NewLearnerRepository(db *gorm.DB) repository.LearnerRepository {
	return &learnerRepository{
		db: db,
	}
}

// CreateLearner persists a new learner.
func (repo *learnerRepository) CreateLearner(ctx context.Context, learner *entity.Learner) error {
	learnerM := fromLearnerDomain(learner)

	if err := repo.db.WithContext(ctx).Create(learnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmissionNo
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSchoolNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create learner")
	}

	learner.ID = learnerM.ID
	learner.CreatedAt = learnerM.CreatedAt
	learner.UpdatedAt = learnerM.UpdatedAt

	return nil
}

// FindLearnerByID retrieves a learner by its unique ID.
func (repo *learnerRepository) FindLearnerByID(ctx context.Context, id uuid.UUID) (*entity.Learner, error) {
	var learnerM model.LearnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&learnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLearnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find learner by ID")
	}

	return toLearnerDomain(&learnerM), nil
}

// UpdateLearner persists changes to an existing learner.
func (repo *learnerRepository) UpdateLearner(ctx context.Context, learner *entity.Learner) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LearnerModel{}).
		Where("id = ?", learner.ID).
		Updates(map[string]any{
			"class_id":       learner.ClassID,
			"admission_no":   learner.AdmissionNo,
			"first_name":     learner.FirstName,
			"last_name":      learner.LastName,
			"birth_date":     learner.BirthDate,
			"guardian_name":  learner.GuardianName,
			"guardian_phone": learner.GuardianPhone,
			"guardian_email": learner.GuardianEmail,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAdmissionNo
		}

		return errors.Wrap(result.Error, "failed to update learner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLearnerNotFound
	}

	return nil
}

// ListLearnersBySchool retrieves a page of learners for a school, with an
// optional search term against name and admission number.
func (repo *learnerRepository) ListLearnersBySchool(ctx context.Context, schoolID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Learner], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).
		Model(&model.LearnerModel{}).
		Where("school_id = ?", schoolID)
	if page.Search != "" {
		pattern := "%" + page.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR admission_no ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.Learner]{}, errors.Wrap(err, "failed to count learners")
	}

	var learnerModels []*model.LearnerModel
	if err := query.
		Order("last_name ASC, first_name ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&learnerModels).Error; err != nil {
		return repository.Page[*entity.Learner]{}, errors.Wrap(err, "failed to list learners")
	}

	learners := make([]*entity.Learner, 0, len(learnerModels))
	for _, learnerM := range learnerModels {
		learners = append(learners, toLearnerDomain(learnerM))
	}

	return repository.Page[*entity.Learner]{
		Items:       learners,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// ListLearnersByClass retrieves all learners enrolled in a class, ordered by
// last name.
func (repo *learnerRepository) ListLearnersByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Learner, error) {
	var learnerModels []*model.LearnerModel

	if err := repo.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("last_name ASC, first_name ASC").
		Find(&learnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list learners by class")
	}

	learners := make([]*entity.Learner, 0, len(learnerModels))
	for _, learnerM := range learnerModels {
		learners = append(learners, toLearnerDomain(learnerM))
	}

	return learners, nil
}

// DeleteLearner removes a learner by its ID (soft delete).
func (repo *learnerRepository) DeleteLearner(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LearnerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete learner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLearnerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLearnerDomain converts a GORM LearnerModel to a domain Learner entity.
func toLearnerDomain(data *model.LearnerModel) *entity.Learner {
	if data == nil {
		return nil
	}

	return &entity.Learner{
		ID:            data.ID,
		SchoolID:      data.SchoolID,
		ClassID:       data.ClassID,
		AdmissionNo:   data.AdmissionNo,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		BirthDate:     data.BirthDate,
		GuardianName:  data.GuardianName,
		GuardianPhone: data.GuardianPhone,
		GuardianEmail: data.GuardianEmail,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromLearnerDomain converts a domain Learner entity to a GORM LearnerModel.
func fromLearnerDomain(learner *entity.Learner) *model.LearnerModel {
	if learner == nil {
		return nil
	}

	return &model.LearnerModel{
		ID:            learner.ID,
		SchoolID:      learner.SchoolID,
		ClassID:       learner.ClassID,
		AdmissionNo:   learner.AdmissionNo,
		FirstName:     learner.FirstName,
		LastName:      learner.LastName,
		BirthDate:     learner.BirthDate,
		GuardianName:  learner.GuardianName,
		GuardianPhone: learner.GuardianPhone,
		GuardianEmail: learner.GuardianEmail,
		CreatedAt:     learner.CreatedAt,
		UpdatedAt:     learner.UpdatedAt,
	}
}
