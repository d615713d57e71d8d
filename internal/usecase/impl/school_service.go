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

// schoolService implements the SchoolUsecase interface.
type schoolService struct {
	schoolRepo repository.SchoolRepository
	classRepo  repository.ClassRepository
	staffRepo  repository.StaffRepository
}

// NewSchoolService creates a new school service instance.
func NewSchoolService(
	schoolRepo repository.SchoolRepository,
	classRepo repository.ClassRepository,
	staffRepo repository.StaffRepository,
) usecase.SchoolUsecase {
	return &schoolService{
		schoolRepo: schoolRepo,
		classRepo:  classRepo,
		staffRepo:  staffRepo,
	}
}

// CreateSchool registers a new school tenant.
func (s *schoolService) CreateSchool(ctx context.Context, input *usecase.SchoolInput) (*entity.School, error) {
	now := time.Now().UTC()
	school := &entity.School{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.schoolRepo.CreateSchool(ctx, school); err != nil {
		return nil, errors.Wrap(err, "failed to create school")
	}

	return school, nil
}

// GetSchool retrieves a school by ID.
func (s *schoolService) GetSchool(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	school, err := s.schoolRepo.FindSchoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find school by id")
	}

	return school, nil
}

// UpdateSchool persists changes to a school.
func (s *schoolService) UpdateSchool(ctx context.Context, id uuid.UUID, input *usecase.SchoolInput) (*entity.School, error) {
	school, err := s.GetSchool(ctx, id)
	if err != nil {
		return nil, err
	}

	school.Name = input.Name
	school.Email = input.Email
	school.Phone = input.Phone
	school.Address = input.Address
	school.UpdatedAt = time.Now().UTC()

	if err := s.schoolRepo.UpdateSchool(ctx, school); err != nil {
		return nil, errors.Wrap(err, "failed to update school")
	}

	return school, nil
}

// ListSchools retrieves a page of schools.
func (s *schoolService) ListSchools(ctx context.Context, query usecase.PageQuery) (repository.Page[*entity.School], error) {
	page, err := s.schoolRepo.ListSchools(ctx, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.School]{}, errors.Wrap(err, "failed to list schools")
	}

	return page, nil
}

// DeleteSchool removes a school.
func (s *schoolService) DeleteSchool(ctx context.Context, id uuid.UUID) error {
	if err := s.schoolRepo.DeleteSchool(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return domainerrors.ErrSchoolNotFound
		}

		return errors.Wrap(err, "failed to delete school")
	}

	return nil
}

// CreateClass adds a class group to a school.
func (s *schoolService) CreateClass(ctx context.Context, input *usecase.ClassInput) (*entity.SchoolClass, error) {
	if _, err := s.GetSchool(ctx, input.SchoolID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	class := &entity.SchoolClass{
		ID:        uuid.New(),
		SchoolID:  input.SchoolID,
		Name:      input.Name,
		Grade:     input.Grade,
		Year:      input.Year,
		Capacity:  input.Capacity,
		StaffID:   input.StaffID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.classRepo.CreateClass(ctx, class); err != nil {
		return nil, errors.Wrap(err, "failed to create class")
	}

	return class, nil
}

// GetClass retrieves a class by ID.
func (s *schoolService) GetClass(ctx context.Context, id uuid.UUID) (*entity.SchoolClass, error) {
	class, err := s.classRepo.FindClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class by id")
	}

	return class, nil
}

// UpdateClass persists changes to a class.
func (s *schoolService) UpdateClass(ctx context.Context, id uuid.UUID, input *usecase.ClassInput) (*entity.SchoolClass, error) {
	class, err := s.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}

	class.Name = input.Name
	class.Grade = input.Grade
	class.Year = input.Year
	class.Capacity = input.Capacity
	class.StaffID = input.StaffID
	class.UpdatedAt = time.Now().UTC()

	if err := s.classRepo.UpdateClass(ctx, class); err != nil {
		return nil, errors.Wrap(err, "failed to update class")
	}

	return class, nil
}

// ListClasses retrieves all classes for a school.
func (s *schoolService) ListClasses(ctx context.Context, schoolID uuid.UUID) ([]*entity.SchoolClass, error) {
	classes, err := s.classRepo.ListClassesBySchool(ctx, schoolID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	return classes, nil
}

// DeleteClass removes a class.
func (s *schoolService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	if err := s.classRepo.DeleteClass(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to delete class")
	}

	return nil
}

// CreateStaff adds a staff member to a school.
func (s *schoolService) CreateStaff(ctx context.Context, input *usecase.StaffInput) (*entity.StaffMember, error) {
	if _, err := s.GetSchool(ctx, input.SchoolID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	staff := &entity.StaffMember{
		ID:        uuid.New(),
		SchoolID:  input.SchoolID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.staffRepo.CreateStaff(ctx, staff); err != nil {
		return nil, errors.Wrap(err, "failed to create staff member")
	}

	return staff, nil
}

// GetStaff retrieves a staff member by ID.
func (s *schoolService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff member by id")
	}

	return staff, nil
}

// UpdateStaff persists changes to a staff member.
func (s *schoolService) UpdateStaff(ctx context.Context, id uuid.UUID, input *usecase.StaffInput) (*entity.StaffMember, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	staff.FirstName = input.FirstName
	staff.LastName = input.LastName
	staff.Email = input.Email
	staff.Phone = input.Phone
	staff.Subject = input.Subject
	staff.UpdatedAt = time.Now().UTC()

	if err := s.staffRepo.UpdateStaff(ctx, staff); err != nil {
		return nil, errors.Wrap(err, "failed to update staff member")
	}

	return staff, nil
}

// ListStaff retrieves a page of staff members for a school.
func (s *schoolService) ListStaff(ctx context.Context, schoolID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.StaffMember], error) {
	page, err := s.staffRepo.ListStaffBySchool(ctx, schoolID, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.StaffMember]{}, errors.Wrap(err, "failed to list staff")
	}

	return page, nil
}

// DeleteStaff removes a staff member.
func (s *schoolService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	if err := s.staffRepo.DeleteStaff(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domainerrors.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to delete staff member")
	}

	return nil
}
