package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// AffiliateInput carries the fields for creating or updating an affiliate.
type AffiliateInput struct {
	UserID         uuid.UUID
	Code           string
	Name           string
	Email          string
	Phone          string
	CommissionRate float64
}

// AffiliateUsecase defines the interface for affiliate management use cases.
type AffiliateUsecase interface {
	// CreateAffiliate enrolls a user as a referral partner.
	CreateAffiliate(ctx context.Context, input *AffiliateInput) (*entity.Affiliate, error)

	// GetAffiliate retrieves an affiliate by ID.
	GetAffiliate(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error)

	// GetAffiliateByCode resolves a referral code to its affiliate.
	GetAffiliateByCode(ctx context.Context, code string) (*entity.Affiliate, error)

	// UpdateAffiliate persists changes to an affiliate.
	UpdateAffiliate(ctx context.Context, id uuid.UUID, input *AffiliateInput) (*entity.Affiliate, error)

	// ListAffiliates retrieves a page of affiliates.
	ListAffiliates(ctx context.Context, query PageQuery) (repository.Page[*entity.Affiliate], error)

	// DeleteAffiliate removes an affiliate.
	DeleteAffiliate(ctx context.Context, id uuid.UUID) error

	// ReferralLink builds the shareable referral URL for an affiliate.
	ReferralLink(affiliate *entity.Affiliate) string

	// GenerateReferralQR renders the affiliate's referral QR code as PNG.
	GenerateReferralQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ResolveReferralQR maps scanned QR payload back to the affiliate.
	ResolveReferralQR(ctx context.Context, qrData string) (*entity.Affiliate, error)

	// CreditCommission credits commission for a sale attributed to a
	// referral code, at the affiliate's configured rate.
	CreditCommission(ctx context.Context, code string, saleAmount float64) error
}
