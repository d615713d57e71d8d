package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for affiliate persistence.
var (
	// ErrAffiliateNotFound is returned when an affiliate is not found.
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrDuplicateAffiliateCode is returned when the referral code is taken.
	ErrDuplicateAffiliateCode = errors.New("affiliate code already exists")
)

// AffiliateRepository defines the interface for affiliate database operations.
type AffiliateRepository interface {
	// CreateAffiliate persists a new affiliate.
	CreateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error

	// FindAffiliateByID retrieves an affiliate by its unique ID.
	FindAffiliateByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error)

	// FindAffiliateByCode retrieves an affiliate by referral code.
	FindAffiliateByCode(ctx context.Context, code string) (*entity.Affiliate, error)

	// UpdateAffiliate persists changes to an existing affiliate.
	UpdateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error

	// CreditBalance atomically adds amount to the affiliate's balance.
	CreditBalance(ctx context.Context, id uuid.UUID, amount float64) error

	// ListAffiliates retrieves a page of affiliates, optionally filtered by a
	// search term matched against name, email and code.
	ListAffiliates(ctx context.Context, page PageRequest) (Page[*entity.Affiliate], error)

	// DeleteAffiliate removes an affiliate by its ID (soft delete).
	DeleteAffiliate(ctx context.Context, id uuid.UUID) error
}
