package handler

import (
	"conectone/internal/delivery/http/response"
	"conectone/internal/domain/entity"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for the business directory handlers:
// companies, tiers, categories and the listings themselves.
type ListingHandler struct {
	uc usecase.ListingUsecase
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

type companyRequest struct {
	OwnerID        uuid.UUID `json:"ownerId" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	RegistrationNo string    `json:"registrationNo"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
}

type tierRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency"`
	MaxImages   int     `json:"maxImages" validate:"gte=0"`
	MaxVideos   int     `json:"maxVideos" validate:"gte=0"`
	Featured    bool    `json:"featured"`
}

type categoryRequest struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

type listingRequest struct {
	CompanyID   uuid.UUID   `json:"companyId" validate:"required"`
	TierID      uuid.UUID   `json:"tierId" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Phone       string      `json:"phone"`
	Website     string      `json:"website"`
	AddressLine string      `json:"addressLine"`
	City        string      `json:"city"`
	Province    string      `json:"province"`
	Country     string      `json:"country"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

func (r *companyRequest) toInput() *usecase.CompanyInput {
	return &usecase.CompanyInput{
		OwnerID:        r.OwnerID,
		Name:           r.Name,
		RegistrationNo: r.RegistrationNo,
		Email:          r.Email,
		Phone:          r.Phone,
		Website:        r.Website,
	}
}

func (r *tierRequest) toInput() *usecase.ListingTierInput {
	return &usecase.ListingTierInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		MaxImages:   r.MaxImages,
		MaxVideos:   r.MaxVideos,
		Featured:    r.Featured,
	}
}

func (r *listingRequest) toInput() *usecase.ListingInput {
	return &usecase.ListingInput{
		CompanyID:   r.CompanyID,
		TierID:      r.TierID,
		Title:       r.Title,
		Description: r.Description,
		Email:       r.Email,
		Phone:       r.Phone,
		Website:     r.Website,
		AddressLine: r.AddressLine,
		City:        r.City,
		Province:    r.Province,
		Country:     r.Country,
		CategoryIDs: r.CategoryIDs,
	}
}

// CreateCompany registers a company that can own listings.
func (h *ListingHandler) CreateCompany(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid company input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := h.uc.CreateCompany(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, company, "Company registered")
}

// GetCompany retrieves a company by ID.
func (h *ListingHandler) GetCompany(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	company, err := h.uc.GetCompany(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, company)
}

// UpdateCompany persists changes to a company.
func (h *ListingHandler) UpdateCompany(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid company input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := h.uc.UpdateCompany(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, company, "Company updated")
}

// ListCompanies retrieves a page of companies.
func (h *ListingHandler) ListCompanies(c echo.Context) error {
	page, err := h.uc.ListCompanies(c.Request().Context(), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// DeleteCompany removes a company.
func (h *ListingHandler) DeleteCompany(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCompany(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Company deleted")
}

// CreateTier creates a directory tier.
func (h *ListingHandler) CreateTier(c echo.Context) error {
	var req tierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tier, err := h.uc.CreateTier(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, tier, "Tier created")
}

// ListTiers retrieves every tier.
func (h *ListingHandler) ListTiers(c echo.Context) error {
	tiers, err := h.uc.ListTiers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tiers)
}

// UpdateTier persists changes to a tier.
func (h *ListingHandler) UpdateTier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req tierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tier, err := h.uc.UpdateTier(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tier, "Tier updated")
}

// DeleteTier removes a tier.
func (h *ListingHandler) DeleteTier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTier(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Tier deleted")
}

// CreateCategory adds a listing category.
func (h *ListingHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.Name, req.ParentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category, "Category created")
}

// ListCategories retrieves every category.
func (h *ListingHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories)
}

// DeleteCategory removes a category.
func (h *ListingHandler) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Category deleted")
}

// CreateListing submits a directory listing for review.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, listing, "Listing submitted for review")
}

// GetListing retrieves a listing by ID.
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, listing)
}

// UpdateListing edits a listing and resets it to pending review.
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.uc.UpdateListing(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, listing, "Listing updated, pending review")
}

// ReviewListing moves a listing through the moderation lifecycle.
func (h *ListingHandler) ReviewListing(c echo.Context) error {
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

	listing, err := h.uc.ReviewListing(c.Request().Context(), id, entity.ReviewStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, listing, "Listing reviewed")
}

// AttachListingImage swaps the listing's image attachment.
func (h *ListingHandler) AttachListingImage(c echo.Context) error {
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

	if err := h.uc.AttachListingImage(c.Request().Context(), id, req.ImageID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Image attached")
}

// ListListings retrieves a page of listings, optionally filtered by status.
func (h *ListingHandler) ListListings(c echo.Context) error {
	status := entity.ReviewStatus(c.QueryParam("status"))

	page, err := h.uc.ListListings(c.Request().Context(), pageQuery(c), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// ListListingsByCompany retrieves all listings for a company.
func (h *ListingHandler) ListListingsByCompany(c echo.Context) error {
	companyID, err := pathUUID(c, "companyId")
	if err != nil {
		return err
	}

	listings, err := h.uc.ListListingsByCompany(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, listings)
}

// DeleteListing removes a listing.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteListing(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Listing deleted")
}
