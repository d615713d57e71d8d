package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// SchoolInput carries the fields for creating or updating a school.
type SchoolInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ClassInput carries the fields for creating or updating a school class.
type ClassInput struct {
	SchoolID uuid.UUID
	Name     string
	Grade    int
	Year     int
	Capacity int
	StaffID  *uuid.UUID
}

// StaffInput carries the fields for creating or updating a staff member.
type StaffInput struct {
	SchoolID  uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
}

// SchoolUsecase defines the interface for school administration use cases:
// schools, class groups and staff members.
type SchoolUsecase interface {
	// CreateSchool registers a new school tenant.
	CreateSchool(ctx context.Context, input *SchoolInput) (*entity.School, error)

	// GetSchool retrieves a school by ID.
	GetSchool(ctx context.Context, id uuid.UUID) (*entity.School, error)

	// UpdateSchool persists changes to a school.
	UpdateSchool(ctx context.Context, id uuid.UUID, input *SchoolInput) (*entity.School, error)

	// ListSchools retrieves a page of schools.
	ListSchools(ctx context.Context, query PageQuery) (repository.Page[*entity.School], error)

	// DeleteSchool removes a school.
	DeleteSchool(ctx context.Context, id uuid.UUID) error

	// CreateClass adds a class group to a school.
	CreateClass(ctx context.Context, input *ClassInput) (*entity.SchoolClass, error)

	// GetClass retrieves a class by ID.
	GetClass(ctx context.Context, id uuid.UUID) (*entity.SchoolClass, error)

	// UpdateClass persists changes to a class.
	UpdateClass(ctx context.Context, id uuid.UUID, input *ClassInput) (*entity.SchoolClass, error)

	// ListClasses retrieves all classes for a school.
	ListClasses(ctx context.Context, schoolID uuid.UUID) ([]*entity.SchoolClass, error)

	// DeleteClass removes a class.
	DeleteClass(ctx context.Context, id uuid.UUID) error

	// CreateStaff adds a staff member to a school.
	CreateStaff(ctx context.Context, input *StaffInput) (*entity.StaffMember, error)

	// GetStaff retrieves a staff member by ID.
	GetStaff(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error)

	// UpdateStaff persists changes to a staff member.
	UpdateStaff(ctx context.Context, id uuid.UUID, input *StaffInput) (*entity.StaffMember, error)

	// ListStaff retrieves a page of staff members for a school.
	ListStaff(ctx context.Context, schoolID uuid.UUID, query PageQuery) (repository.Page[*entity.StaffMember], error)

	// DeleteStaff removes a staff member.
	DeleteStaff(ctx context.Context, id uuid.UUID) error
}
