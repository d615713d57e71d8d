package handler

import (
	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for the extracurricular group handlers.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

type activityGroupRequest struct {
	SchoolID    uuid.UUID  `json:"schoolId" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	LeadStaffID *uuid.UUID `json:"leadStaffId,omitempty"`
}

type memberRequest struct {
	LearnerID uuid.UUID `json:"learnerId" validate:"required"`
}

func (r *activityGroupRequest) toInput() *usecase.ActivityGroupInput {
	return &usecase.ActivityGroupInput{
		SchoolID:    r.SchoolID,
		Name:        r.Name,
		Description: r.Description,
		LeadStaffID: r.LeadStaffID,
	}
}

// CreateGroup adds an activity group to a school.
func (h *ActivityHandler) CreateGroup(c echo.Context) error {
	var req activityGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid group input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.uc.CreateGroup(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, group, "Group created")
}

// GetGroup retrieves a group by ID.
func (h *ActivityHandler) GetGroup(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	group, err := h.uc.GetGroup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, group)
}

// UpdateGroup persists changes to a group.
func (h *ActivityHandler) UpdateGroup(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req activityGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid group input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.uc.UpdateGroup(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, group, "Group updated")
}

// ListGroups retrieves all activity groups for a school.
func (h *ActivityHandler) ListGroups(c echo.Context) error {
	schoolID, err := pathUUID(c, "schoolId")
	if err != nil {
		return err
	}

	groups, err := h.uc.ListGroups(c.Request().Context(), schoolID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, groups)
}

// AddMember enrolls a learner into a group.
func (h *ActivityHandler) AddMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.AddMember(c.Request().Context(), id, req.LearnerID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Member added")
}

// RemoveMember removes a learner from a group.
func (h *ActivityHandler) RemoveMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	learnerID, err := pathUUID(c, "learnerId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveMember(c.Request().Context(), id, learnerID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Member removed")
}

// ListMembers retrieves the learners enrolled in a group.
func (h *ActivityHandler) ListMembers(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.uc.ListMembers(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, members)
}

// DeleteGroup removes a group and its memberships.
func (h *ActivityHandler) DeleteGroup(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteGroup(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Group deleted")
}
