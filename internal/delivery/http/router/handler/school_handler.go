package handler

import (
	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SchoolHandler holds dependencies for the school administration handlers:
// schools, class groups and staff members.
type SchoolHandler struct {
	uc usecase.SchoolUsecase
}

// NewSchoolHandler is the constructor for SchoolHandler, injected by Fx.
func NewSchoolHandler(uc usecase.SchoolUsecase) *SchoolHandler {
	return &SchoolHandler{uc: uc}
}

type schoolRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type classRequest struct {
	SchoolID uuid.UUID  `json:"schoolId" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Grade    int        `json:"grade" validate:"gte=0"`
	Year     int        `json:"year" validate:"gte=0"`
	Capacity int        `json:"capacity" validate:"gte=0"`
	StaffID  *uuid.UUID `json:"staffId,omitempty"`
}

type staffRequest struct {
	SchoolID  uuid.UUID `json:"schoolId" validate:"required"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
}

func (r *schoolRequest) toInput() *usecase.SchoolInput {
	return &usecase.SchoolInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

func (r *classRequest) toInput() *usecase.ClassInput {
	return &usecase.ClassInput{
		SchoolID: r.SchoolID,
		Name:     r.Name,
		Grade:    r.Grade,
		Year:     r.Year,
		Capacity: r.Capacity,
		StaffID:  r.StaffID,
	}
}

func (r *staffRequest) toInput() *usecase.StaffInput {
	return &usecase.StaffInput{
		SchoolID:  r.SchoolID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
	}
}

// CreateSchool registers a new school tenant.
func (h *SchoolHandler) CreateSchool(c echo.Context) error {
	var req schoolRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid school input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	school, err := h.uc.CreateSchool(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, school, "School registered")
}

// GetSchool retrieves a school by ID.
func (h *SchoolHandler) GetSchool(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	school, err := h.uc.GetSchool(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, school)
}

// UpdateSchool persists changes to a school.
func (h *SchoolHandler) UpdateSchool(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req schoolRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid school input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	school, err := h.uc.UpdateSchool(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, school, "School updated")
}

// ListSchools retrieves a page of schools.
func (h *SchoolHandler) ListSchools(c echo.Context) error {
	page, err := h.uc.ListSchools(c.Request().Context(), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// DeleteSchool removes a school.
func (h *SchoolHandler) DeleteSchool(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSchool(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "School deleted")
}

// CreateClass adds a class group to a school.
func (h *SchoolHandler) CreateClass(c echo.Context) error {
	var req classRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid class input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	class, err := h.uc.CreateClass(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, class, "Class created")
}

// GetClass retrieves a class by ID.
func (h *SchoolHandler) GetClass(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	class, err := h.uc.GetClass(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, class)
}

// UpdateClass persists changes to a class.
func (h *SchoolHandler) UpdateClass(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req classRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid class input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	class, err := h.uc.UpdateClass(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, class, "Class updated")
}

// ListClasses retrieves all classes for a school.
func (h *SchoolHandler) ListClasses(c echo.Context) error {
	schoolID, err := pathUUID(c, "schoolId")
	if err != nil {
		return err
	}

	classes, err := h.uc.ListClasses(c.Request().Context(), schoolID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, classes)
}

// DeleteClass removes a class.
func (h *SchoolHandler) DeleteClass(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteClass(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Class deleted")
}

// CreateStaff adds a staff member to a school.
func (h *SchoolHandler) CreateStaff(c echo.Context) error {
	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	staff, err := h.uc.CreateStaff(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, staff, "Staff member added")
}

// GetStaff retrieves a staff member by ID.
func (h *SchoolHandler) GetStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	staff, err := h.uc.GetStaff(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, staff)
}

// UpdateStaff persists changes to a staff member.
func (h *SchoolHandler) UpdateStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	staff, err := h.uc.UpdateStaff(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, staff, "Staff member updated")
}

// ListStaff retrieves a page of staff members for a school.
func (h *SchoolHandler) ListStaff(c echo.Context) error {
	schoolID, err := pathUUID(c, "schoolId")
	if err != nil {
		return err
	}

	page, err := h.uc.ListStaff(c.Request().Context(), schoolID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// DeleteStaff removes a staff member.
func (h *SchoolHandler) DeleteStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStaff(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Staff member deleted")
}
