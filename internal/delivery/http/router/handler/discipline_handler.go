package handler

import (
	"time"

	"conectone/internal/delivery/http/response"
	"conectone/internal/domain/entity"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DisciplineHandler holds dependencies for the disciplinary record handlers.
type DisciplineHandler struct {
	uc usecase.DisciplineUsecase
}

// NewDisciplineHandler is the constructor for DisciplineHandler, injected by Fx.
func NewDisciplineHandler(uc usecase.DisciplineUsecase) *DisciplineHandler {
	return &DisciplineHandler{uc: uc}
}

type disciplineRequest struct {
	LearnerID   uuid.UUID `json:"learnerId" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Severity    string    `json:"severity" validate:"required"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
	RecordedBy  uuid.UUID `json:"recordedBy" validate:"required"`
}

type resolveRequest struct {
	ResolutionNote string `json:"resolutionNote" validate:"required"`
}

func (r *disciplineRequest) toInput() *usecase.DisciplineInput {
	return &usecase.DisciplineInput{
		LearnerID:   r.LearnerID,
		Category:    r.Category,
		Severity:    entity.DisciplineSeverity(r.Severity),
		Description: r.Description,
		OccurredAt:  r.OccurredAt,
		RecordedBy:  r.RecordedBy,
	}
}

// RecordIncident documents a new disciplinary incident.
func (h *DisciplineHandler) RecordIncident(c echo.Context) error {
	var req disciplineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid incident input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.RecordIncident(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, record, "Incident recorded")
}

// Get retrieves a record by ID.
func (h *DisciplineHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.uc.GetRecord(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, record)
}

// Update persists changes to a record.
func (h *DisciplineHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req disciplineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid incident input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.UpdateRecord(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, record, "Record updated")
}

// Resolve closes a record with a resolution note.
func (h *DisciplineHandler) Resolve(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid resolution input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.ResolveRecord(c.Request().Context(), id, req.ResolutionNote)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, record, "Record resolved")
}

// ListByLearner retrieves all records for a learner.
func (h *DisciplineHandler) ListByLearner(c echo.Context) error {
	learnerID, err := pathUUID(c, "learnerId")
	if err != nil {
		return err
	}

	records, err := h.uc.ListRecordsByLearner(c.Request().Context(), learnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, records)
}

// Delete removes a record.
func (h *DisciplineHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRecord(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Record deleted")
}
