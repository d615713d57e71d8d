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

// AdvertHandler holds dependencies for advert handlers.
type AdvertHandler struct {
	uc usecase.AdvertUsecase
}

// NewAdvertHandler is the constructor for AdvertHandler, injected by Fx.
func NewAdvertHandler(uc usecase.AdvertUsecase) *AdvertHandler {
	return &AdvertHandler{uc: uc}
}

type advertRequest struct {
	OwnerID   uuid.UUID `json:"ownerId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Body      string    `json:"body"`
	Placement string    `json:"placement"`
	Price     float64   `json:"price" validate:"gte=0"`
	Currency  string    `json:"currency"`
	StartsAt  time.Time `json:"startsAt" validate:"required"`
	EndsAt    time.Time `json:"endsAt" validate:"required"`
}

type reviewRequest struct {
	Status string `json:"status" validate:"required"`
}

type attachImageRequest struct {
	ImageID uuid.UUID `json:"imageId" validate:"required"`
}

func (r *advertRequest) toInput() *usecase.AdvertInput {
	return &usecase.AdvertInput{
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Body:      r.Body,
		Placement: r.Placement,
		Price:     r.Price,
		Currency:  r.Currency,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
	}
}

// Create submits a new advert for review.
func (h *AdvertHandler) Create(c echo.Context) error {
	var req advertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid advert input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	advert, err := h.uc.CreateAdvert(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, advert, "Advert submitted for review")
}

// Get retrieves an advert by ID.
func (h *AdvertHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	advert, err := h.uc.GetAdvert(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, advert)
}

// Update edits an advert and resets it to pending review.
func (h *AdvertHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req advertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid advert input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	advert, err := h.uc.UpdateAdvert(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, advert, "Advert updated, pending review")
}

// Review moves an advert through the moderation lifecycle.
func (h *AdvertHandler) Review(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	advert, err := h.uc.ReviewAdvert(c.Request().Context(), id, entity.ReviewStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, advert, "Advert reviewed")
}

// List retrieves a page of adverts, optionally filtered by review status.
func (h *AdvertHandler) List(c echo.Context) error {
	status := entity.ReviewStatus(c.QueryParam("status"))

	page, err := h.uc.ListAdverts(c.Request().Context(), pageQuery(c), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// ListByOwner retrieves all adverts belonging to an owner.
func (h *AdvertHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathUUID(c, "ownerId")
	if err != nil {
		return err
	}

	adverts, err := h.uc.ListAdvertsByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, adverts)
}

// AttachImage swaps the advert's image attachment.
func (h *AdvertHandler) AttachImage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req attachImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid image input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.AttachImage(c.Request().Context(), id, req.ImageID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Image attached")
}

// Delete removes an advert.
func (h *AdvertHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAdvert(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Advert deleted")
}
