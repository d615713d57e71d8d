package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for school persistence.
var (
	// ErrSchoolNotFound is returned when a school is not found.
	ErrSchoolNotFound = errors.New("school not found")
	// ErrClassNotFound is returned when a school class is not found.
	ErrClassNotFound = errors.New("school class not found")
	// ErrStaffNotFound is returned when a staff member is not found.
	ErrStaffNotFound = errors.New("staff member not found")
)

// SchoolRepository defines the interface for school database operations.
type SchoolRepository interface {
	// CreateSchool persists a new school.
	CreateSchool(ctx context.Context, school *entity.School) error

	// FindSchoolByID retrieves a school by its unique ID.
	FindSchoolByID(ctx context.Context, id uuid.UUID) (*entity.School, error)

	// UpdateSchool persists changes to an existing school.
	UpdateSchool(ctx context.Context, school *entity.School) error

	// ListSchools retrieves a page of schools.
	ListSchools(ctx context.Context, page PageRequest) (Page[*entity.School], error)

	// DeleteSchool removes a school by its ID (soft delete).
	DeleteSchool(ctx context.Context, id uuid.UUID) error
}

// ClassRepository defines the interface for school class operations.
type ClassRepository interface {
	// CreateClass persists a new school class.
	CreateClass(ctx context.Context, class *entity.SchoolClass) error

	// FindClassByID retrieves a class by its unique ID.
	FindClassByID(ctx context.Context, id uuid.UUID) (*entity.SchoolClass, error)

	// UpdateClass persists changes to an existing class.
	UpdateClass(ctx context.Context, class *entity.SchoolClass) error

	// ListClassesBySchool retrieves all classes for a school, newest year first.
	ListClassesBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.SchoolClass, error)

	// CountLearnersInClass returns the number of learners enrolled in a class.
	CountLearnersInClass(ctx context.Context, classID uuid.UUID) (int64, error)

	// DeleteClass removes a class by its ID (soft delete).
	DeleteClass(ctx context.Context, id uuid.UUID) error
}

// StaffRepository defines the interface for staff member operations.
type StaffRepository interface {
	// CreateStaff persists a new staff member.
	CreateStaff(ctx context.Context, staff *entity.StaffMember) error

	// FindStaffByID retrieves a staff member by its unique ID.
	FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error)

	// UpdateStaff persists changes to an existing staff member.
	UpdateStaff(ctx context.Context, staff *entity.StaffMember) error

	// ListStaffBySchool retrieves a page of staff members for a school.
	ListStaffBySchool(ctx context.Context, schoolID uuid.UUID, page PageRequest) (Page[*entity.StaffMember], error)

	// DeleteStaff removes a staff member by its ID (soft delete).
	DeleteStaff(ctx context.Context, id uuid.UUID) error
}
