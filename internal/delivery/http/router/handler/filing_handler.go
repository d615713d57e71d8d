package handler

import (
	"encoding/base64"
	"net/http"

	"conectone/internal/delivery/http/response"
	"conectone/internal/domain/entity"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FilingHandler holds dependencies for the file upload handlers. Payloads
// travel base64-encoded in the JSON body.
type FilingHandler struct {
	uc usecase.FilingUsecase
}

// NewFilingHandler is the constructor for FilingHandler, injected by Fx.
func NewFilingHandler(uc usecase.FilingUsecase) *FilingHandler {
	return &FilingHandler{uc: uc}
}

type uploadRequest struct {
	OwnerID     uuid.UUID `json:"ownerId" validate:"required"`
	EntityType  string    `json:"entityType" validate:"required"`
	EntityID    uuid.UUID `json:"entityId" validate:"required"`
	Kind        string    `json:"kind" validate:"required"`
	FileName    string    `json:"fileName" validate:"required"`
	ContentType string    `json:"contentType"`
	Usage       string    `json:"usage"`
	Content     string    `json:"content" validate:"required"`
}

func (r *uploadRequest) toInput() (*usecase.UploadInput, error) {
	data, err := base64.StdEncoding.DecodeString(r.Content)
	if err != nil {
		return nil, err
	}

	return &usecase.UploadInput{
		OwnerID:     r.OwnerID,
		EntityType:  r.EntityType,
		EntityID:    r.EntityID,
		Kind:        entity.FileKind(r.Kind),
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Usage:       r.Usage,
		Data:        data,
	}, nil
}

// Upload stores a payload and its metadata.
func (h *FilingHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid upload input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BindingError(c, "Invalid base64 content")
	}

	upload, err := h.uc.Upload(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, upload, "File uploaded")
}

// Get retrieves upload metadata by ID.
func (h *FilingHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	upload, err := h.uc.GetUpload(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, upload)
}

// Download streams the stored payload with its recorded content type.
func (h *FilingHandler) Download(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	upload, data, err := h.uc.Download(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+upload.FileName+`"`)

	return c.Blob(http.StatusOK, contentType, data)
}

// Replace stores a new payload for the same attachment target.
func (h *FilingHandler) Replace(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid upload input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BindingError(c, "Invalid base64 content")
	}

	upload, err := h.uc.Replace(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, upload, "File replaced")
}

// ListByEntity retrieves all uploads attached to an entity.
func (h *FilingHandler) ListByEntity(c echo.Context) error {
	entityType := c.Param("entityType")

	entityID, err := pathUUID(c, "entityId")
	if err != nil {
		return err
	}

	uploads, err := h.uc.ListByEntity(c.Request().Context(), entityType, entityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, uploads)
}

// Delete removes an upload's metadata and payload.
func (h *FilingHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "File deleted")
}
