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

// staffRepository implements the repository.StaffRepository interface.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{
		db: db,
	}
}

// CreateStaff persists a new staff member.
func (repo *staffRepository) CreateStaff(ctx context.Context, staff *entity.StaffMember) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSchoolNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff member")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindStaffByID retrieves a staff member by its unique ID.
func (repo *staffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	var staffM model.StaffMemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff member by ID")
	}

	return toStaffDomain(&staffM), nil
}

// UpdateStaff persists changes to an existing staff member.
func (repo *staffRepository) UpdateStaff(ctx context.Context, staff *entity.StaffMember) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StaffMemberModel{}).
		Where("id = ?", staff.ID).
		Updates(map[string]any{
			"first_name": staff.FirstName,
			"last_name":  staff.LastName,
			"email":      staff.Email,
			"phone":      staff.Phone,
			"subject":    staff.Subject,
			"is_active":  staff.Active,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update staff member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// ListStaffBySchool retrieves a page of staff members for a school.
func (repo *staffRepository) ListStaffBySchool(ctx context.Context, schoolID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.StaffMember], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).
		Model(&model.StaffMemberModel{}).
		Where("school_id = ?", schoolID)
	if page.Search != "" {
		pattern := "%" + page.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.StaffMember]{}, errors.Wrap(err, "failed to count staff members")
	}

	var staffModels []*model.StaffMemberModel
	if err := query.
		Order("last_name ASC, first_name ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&staffModels).Error; err != nil {
		return repository.Page[*entity.StaffMember]{}, errors.Wrap(err, "failed to list staff members")
	}

	staff := make([]*entity.StaffMember, 0, len(staffModels))
	for _, staffM := range staffModels {
		staff = append(staff, toStaffDomain(staffM))
	}

	return repository.Page[*entity.StaffMember]{
		Items:       staff,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// DeleteStaff removes a staff member by its ID (soft delete).
func (repo *staffRepository) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StaffMemberModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete staff member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStaffDomain converts a GORM StaffMemberModel to a domain StaffMember entity.
func toStaffDomain(data *model.StaffMemberModel) *entity.StaffMember {
	if data == nil {
		return nil
	}

	return &entity.StaffMember{
		ID:        data.ID,
		SchoolID:  data.SchoolID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Subject:   data.Subject,
		Active:    data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStaffDomain converts a domain StaffMember entity to a GORM StaffMemberModel.
func fromStaffDomain(staff *entity.StaffMember) *model.StaffMemberModel {
	if staff == nil {
		return nil
	}

	return &model.StaffMemberModel{
		ID:        staff.ID,
		SchoolID:  staff.SchoolID,
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Email:     staff.Email,
		Phone:     staff.Phone,
		Subject:   staff.Subject,
		IsActive:  staff.Active,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}
