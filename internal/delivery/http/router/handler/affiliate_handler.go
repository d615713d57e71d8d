package handler

import (
	"net/http"

	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AffiliateHandler holds dependencies for referral partner handlers.
type AffiliateHandler struct {
	uc usecase.AffiliateUsecase
}

// NewAffiliateHandler is the constructor for AffiliateHandler, injected by Fx.
func NewAffiliateHandler(uc usecase.AffiliateUsecase) *AffiliateHandler {
	return &AffiliateHandler{uc: uc}
}

type affiliateRequest struct {
	UserID         uuid.UUID `json:"userId" validate:"required"`
	Code           string    `json:"code" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	CommissionRate float64   `json:"commissionRate" validate:"gte=0,lte=1"`
}

type resolveQRRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

type commissionRequest struct {
	SaleAmount float64 `json:"saleAmount" validate:"required,gt=0"`
}

func (r *affiliateRequest) toInput() *usecase.AffiliateInput {
	return &usecase.AffiliateInput{
		UserID:         r.UserID,
		Code:           r.Code,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		CommissionRate: r.CommissionRate,
	}
}

// Create enrolls a referral partner.
func (h *AffiliateHandler) Create(c echo.Context) error {
	var req affiliateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid affiliate input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	affiliate, err := h.uc.CreateAffiliate(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, affiliate, "Affiliate enrolled")
}

// Get retrieves an affiliate by ID, including its referral link.
func (h *AffiliateHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	affiliate, err := h.uc.GetAffiliate(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"affiliate":    affiliate,
		"referralLink": h.uc.ReferralLink(affiliate),
	})
}

// Update persists changes to an affiliate.
func (h *AffiliateHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req affiliateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid affiliate input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	affiliate, err := h.uc.UpdateAffiliate(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, affiliate, "Affiliate updated")
}

// List retrieves a page of affiliates.
func (h *AffiliateHandler) List(c echo.Context) error {
	page, err := h.uc.ListAffiliates(c.Request().Context(), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// Delete removes an affiliate.
func (h *AffiliateHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAffiliate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Affiliate deleted")
}

// ReferralQR renders the affiliate's referral QR code as a PNG image.
func (h *AffiliateHandler) ReferralQR(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateReferralQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR maps a scanned QR payload back to its affiliate.
func (h *AffiliateHandler) ResolveQR(c echo.Context) error {
	var req resolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid QR payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	affiliate, err := h.uc.ResolveReferralQR(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, affiliate)
}

// CreditCommission credits commission for a sale attributed to a code.
func (h *AffiliateHandler) CreditCommission(c echo.Context) error {
	code := c.Param("code")

	var req commissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid commission input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.CreditCommission(c.Request().Context(), code, req.SaleAmount); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Commission credited")
}
