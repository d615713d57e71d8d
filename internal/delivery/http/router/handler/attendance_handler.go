package handler

import (
	"net/http"
	"time"

	"conectone/internal/delivery/http/response"
	"conectone/internal/domain/entity"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttendanceHandler holds dependencies for the class register handlers.
type AttendanceHandler struct {
	uc usecase.AttendanceUsecase
}

// NewAttendanceHandler is the constructor for AttendanceHandler, injected by Fx.
func NewAttendanceHandler(uc usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type registerEntryRequest struct {
	LearnerID uuid.UUID `json:"learnerId" validate:"required"`
	Status    string    `json:"status" validate:"required"`
	Note      string    `json:"note"`
}

type captureRegisterRequest struct {
	ClassID    uuid.UUID              `json:"classId" validate:"required"`
	Date       time.Time              `json:"date" validate:"required"`
	RecordedBy uuid.UUID              `json:"recordedBy" validate:"required"`
	Entries    []registerEntryRequest `json:"entries" validate:"dive"`
}

func (r *captureRegisterRequest) toInput() *usecase.CaptureRegisterInput {
	entries := make([]usecase.RegisterEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, usecase.RegisterEntry{
			LearnerID: e.LearnerID,
			Status:    entity.AttendanceStatus(e.Status),
			Note:      e.Note,
		})
	}

	return &usecase.CaptureRegisterInput{
		ClassID:    r.ClassID,
		Date:       r.Date,
		RecordedBy: r.RecordedBy,
		Entries:    entries,
	}
}

// dateQuery parses a date-only query parameter, defaulting when absent.
func dateQuery(c echo.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return date, nil
}

// CaptureRegister stores a class register for a day.
func (h *AttendanceHandler) CaptureRegister(c echo.Context) error {
	var req captureRegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid register input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	records, err := h.uc.CaptureRegister(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, records, "Register captured")
}

// GetRegister retrieves the register for a class on a date.
func (h *AttendanceHandler) GetRegister(c echo.Context) error {
	classID, err := pathUUID(c, "classId")
	if err != nil {
		return err
	}

	date, err := dateQuery(c, "date", time.Now().UTC())
	if err != nil {
		return err
	}

	records, err := h.uc.GetRegister(c.Request().Context(), classID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, records)
}

// GetLearnerHistory retrieves a learner's records within a date range.
func (h *AttendanceHandler) GetLearnerHistory(c echo.Context) error {
	learnerID, err := pathUUID(c, "learnerId")
	if err != nil {
		return err
	}

	from, to, err := rangeQuery(c)
	if err != nil {
		return err
	}

	records, err := h.uc.GetLearnerHistory(c.Request().Context(), learnerID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, records)
}

// GetLearnerSummary aggregates a learner's attendance within a date range.
func (h *AttendanceHandler) GetLearnerSummary(c echo.Context) error {
	learnerID, err := pathUUID(c, "learnerId")
	if err != nil {
		return err
	}

	from, to, err := rangeQuery(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.GetLearnerSummary(c.Request().Context(), learnerID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, summary)
}

func rangeQuery(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	from, err := dateQuery(c, "from", now.AddDate(0, -1, 0))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := dateQuery(c, "to", now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}
