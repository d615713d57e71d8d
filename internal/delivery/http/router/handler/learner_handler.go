package handler

import (
	"time"

	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LearnerHandler holds dependencies for learner enrollment handlers.
type LearnerHandler struct {
	uc usecase.LearnerUsecase
}

// NewLearnerHandler is the constructor for LearnerHandler, injected by Fx.
func NewLearnerHandler(uc usecase.LearnerUsecase) *LearnerHandler {
	return &LearnerHandler{uc: uc}
}

type learnerRequest struct {
	SchoolID      uuid.UUID  `json:"schoolId" validate:"required"`
	ClassID       *uuid.UUID `json:"classId,omitempty"`
	AdmissionNo   string     `json:"admissionNo" validate:"required"`
	FirstName     string     `json:"firstName" validate:"required"`
	LastName      string     `json:"lastName" validate:"required"`
	BirthDate     time.Time  `json:"birthDate"`
	GuardianName  string     `json:"guardianName"`
	GuardianPhone string     `json:"guardianPhone"`
	GuardianEmail string     `json:"guardianEmail" validate:"omitempty,email"`
}

type assignClassRequest struct {
	ClassID uuid.UUID `json:"classId" validate:"required"`
}

func (r *learnerRequest) toInput() *usecase.LearnerInput {
	return &usecase.LearnerInput{
		SchoolID:      r.SchoolID,
		ClassID:       r.ClassID,
		AdmissionNo:   r.AdmissionNo,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		BirthDate:     r.BirthDate,
		GuardianName:  r.GuardianName,
		GuardianPhone: r.GuardianPhone,
		GuardianEmail: r.GuardianEmail,
	}
}

// Enroll registers a learner at a school.
func (h *LearnerHandler) Enroll(c echo.Context) error {
	var req learnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid learner input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	learner, err := h.uc.EnrollLearner(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, learner, "Learner enrolled")
}

// Get retrieves a learner by ID.
func (h *LearnerHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	learner, err := h.uc.GetLearner(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, learner)
}

// Update persists changes to a learner.
func (h *LearnerHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req learnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid learner input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	learner, err := h.uc.UpdateLearner(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, learner, "Learner updated")
}

// AssignToClass moves a learner into a class.
func (h *LearnerHandler) AssignToClass(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req assignClassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid class assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.AssignToClass(c.Request().Context(), id, req.ClassID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Learner assigned to class")
}

// ListBySchool retrieves a page of a school's learners.
func (h *LearnerHandler) ListBySchool(c echo.Context) error {
	schoolID, err := pathUUID(c, "schoolId")
	if err != nil {
		return err
	}

	page, err := h.uc.ListLearners(c.Request().Context(), schoolID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// ListByClass retrieves all learners enrolled in a class.
func (h *LearnerHandler) ListByClass(c echo.Context) error {
	classID, err := pathUUID(c, "classId")
	if err != nil {
		return err
	}

	learners, err := h.uc.ListLearnersByClass(c.Request().Context(), classID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, learners)
}

// Delete removes a learner.
func (h *LearnerHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteLearner(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Learner deleted")
}
