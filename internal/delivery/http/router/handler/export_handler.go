package handler

import (
	"net/http"

	"conectone/internal/domain/entity"
	"conectone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for the CSV export handlers.
type ExportHandler struct {
	uc usecase.ExportUsecase
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

const csvContentType = "text/csv"

func serveCSV(c echo.Context, doc []byte, name string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)

	return c.Blob(http.StatusOK, csvContentType, doc)
}

// Learners renders a school's learner roll as CSV.
func (h *ExportHandler) Learners(c echo.Context) error {
	schoolID, err := pathUUID(c, "schoolId")
	if err != nil {
		return err
	}

	doc, name, err := h.uc.ExportLearners(c.Request().Context(), schoolID)
	if err != nil {
		return errors.WithStack(err)
	}

	return serveCSV(c, doc, name)
}

// Adverts renders adverts filtered by review status as CSV.
func (h *ExportHandler) Adverts(c echo.Context) error {
	status := entity.ReviewStatus(c.QueryParam("status"))

	doc, name, err := h.uc.ExportAdverts(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return serveCSV(c, doc, name)
}

// Listings renders business listings filtered by review status as CSV.
func (h *ExportHandler) Listings(c echo.Context) error {
	status := entity.ReviewStatus(c.QueryParam("status"))

	doc, name, err := h.uc.ExportListings(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return serveCSV(c, doc, name)
}

// Attendance renders a learner's attendance history as CSV.
func (h *ExportHandler) Attendance(c echo.Context) error {
	learnerID, err := pathUUID(c, "learnerId")
	if err != nil {
		return err
	}

	doc, name, err := h.uc.ExportAttendance(c.Request().Context(), learnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return serveCSV(c, doc, name)
}
