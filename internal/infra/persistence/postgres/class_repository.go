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

// classRepository implements the repository.ClassRepository interface.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{
		db: db,
	}
}

// CreateClass persists a new school class.
func (repo *classRepository) CreateClass(ctx context.Context, class *entity.SchoolClass) error {
	classM := fromClassDomain(class)

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSchoolNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create class")
	}

	class.ID = classM.ID
	class.CreatedAt = classM.CreatedAt
	class.UpdatedAt = classM.UpdatedAt

	return nil
}

// FindClassByID retrieves a class by its unique ID.
func (repo *classRepository) FindClassByID(ctx context.Context, id uuid.UUID) (*entity.SchoolClass, error) {
	var classM model.SchoolClassModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&classM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class by ID")
	}

	return toClassDomain(&classM), nil
}

// UpdateClass persists changes to an existing class.
func (repo *classRepository) UpdateClass(ctx context.Context, class *entity.SchoolClass) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SchoolClassModel{}).
		Where("id = ?", class.ID).
		Updates(map[string]any{
			"name":     class.Name,
			"grade":    class.Grade,
			"year":     class.Year,
			"capacity": class.Capacity,
			"staff_id": class.StaffID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update class")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// ListClassesBySchool retrieves all classes for a school, newest year first.
func (repo *classRepository) ListClassesBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.SchoolClass, error) {
	var classModels []*model.SchoolClassModel

	if err := repo.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("year DESC, grade ASC, name ASC").
		Find(&classModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list classes by school")
	}

	classes := make([]*entity.SchoolClass, 0, len(classModels))
	for _, classM := range classModels {
		classes = append(classes, toClassDomain(classM))
	}

	return classes, nil
}

// CountLearnersInClass returns the number of learners enrolled in a class.
func (repo *classRepository) CountLearnersInClass(ctx context.Context, classID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LearnerModel{}).
		Where("class_id = ?", classID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count learners in class")
	}

	return count, nil
}

// DeleteClass removes a class by its ID (soft delete).
func (repo *classRepository) DeleteClass(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SchoolClassModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete class")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toClassDomain converts a GORM SchoolClassModel to a domain SchoolClass entity.
func toClassDomain(data *model.SchoolClassModel) *entity.SchoolClass {
	if data == nil {
		return nil
	}

	return &entity.SchoolClass{
		ID:        data.ID,
		SchoolID:  data.SchoolID,
		Name:      data.Name,
		Grade:     data.Grade,
		Year:      data.Year,
		Capacity:  data.Capacity,
		StaffID:   data.StaffID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromClassDomain converts a domain SchoolClass entity to a GORM SchoolClassModel.
func fromClassDomain(class *entity.SchoolClass) *model.SchoolClassModel {
	if class == nil {
		return nil
	}

	return &model.SchoolClassModel{
		ID:        class.ID,
		SchoolID:  class.SchoolID,
		Name:      class.Name,
		Grade:     class.Grade,
		Year:      class.Year,
		Capacity:  class.Capacity,
		StaffID:   class.StaffID,
		CreatedAt: class.CreatedAt,
		UpdatedAt: class.UpdatedAt,
	}
}
