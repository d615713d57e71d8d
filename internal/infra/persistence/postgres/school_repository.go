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

// schoolRepository implements the repository.SchoolRepository interface.
type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository is the constructor for schoolRepository.
func NewSchoolRepository(db *gorm.DB) repository.SchoolRepository {
	return &schoolRepository{
		db: db,
	}
}

// CreateSchool persists a new school.
func (repo *schoolRepository) CreateSchool(ctx context.Context, school *entity.School) error {
	schoolM := fromSchoolDomain(school)

	if err := repo.db.WithContext(ctx).Create(schoolM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create school")
	}

	school.ID = schoolM.ID
	school.CreatedAt = schoolM.CreatedAt
	school.UpdatedAt = schoolM.UpdatedAt

	return nil
}

// FindSchoolByID retrieves a school by its unique ID.
func (repo *schoolRepository) FindSchoolByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	var schoolM model.SchoolModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&schoolM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find school by ID")
	}

	return toSchoolDomain(&schoolM), nil
}

// UpdateSchool persists changes to an existing school.
func (repo *schoolRepository) UpdateSchool(ctx context.Context, school *entity.School) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SchoolModel{}).
		Where("id = ?", school.ID).
		Updates(map[string]any{
			"name":      school.Name,
			"email":     school.Email,
			"phone":     school.Phone,
			"address":   school.Address,
			"is_active": school.Active,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update school")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSchoolNotFound
	}

	return nil
}

// ListSchools retrieves a page of schools.
func (repo *schoolRepository) ListSchools(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.School], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.SchoolModel{})
	if page.Search != "" {
		query = query.Where("name ILIKE ?", "%"+page.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.School]{}, errors.Wrap(err, "failed to count schools")
	}

	var schoolModels []*model.SchoolModel
	if err := query.
		Order("name ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&schoolModels).Error; err != nil {
		return repository.Page[*entity.School]{}, errors.Wrap(err, "failed to list schools")
	}

	schools := make([]*entity.School, 0, len(schoolModels))
	for _, schoolM := range schoolModels {
		schools = append(schools, toSchoolDomain(schoolM))
	}

	return repository.Page[*entity.School]{
		Items:       schools,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// DeleteSchool removes a school by its ID (soft delete).
func (repo *schoolRepository) DeleteSchool(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SchoolModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete school")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSchoolNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSchoolDomain converts a GORM SchoolModel to a domain School entity.
func toSchoolDomain(data *model.SchoolModel) *entity.School {
	if data == nil {
		return nil
	}

	return &entity.School{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Active:    data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSchoolDomain converts a domain School entity to a GORM SchoolModel.
func fromSchoolDomain(school *entity.School) *model.SchoolModel {
	if school == nil {
		return nil
	}

	return &model.SchoolModel{
		ID:        school.ID,
		Name:      school.Name,
		Email:     school.Email,
		Phone:     school.Phone,
		Address:   school.Address,
		IsActive:  school.Active,
		CreatedAt: school.CreatedAt,
		UpdatedAt: school.UpdatedAt,
	}
}
