package impl

import (
	"context"
	"strings"
	"time"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// affiliateService implements the AffiliateUsecase interface.
type affiliateService struct {
	affiliateRepo   repository.AffiliateRepository
	qrcodeService   service.QRCodeService
	referralBaseURL string
}

// NewAffiliateService creates a new affiliate service instance.
func NewAffiliateService(
	affiliateRepo repository.AffiliateRepository,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
) usecase.AffiliateUsecase {
	referralBaseURL := ""
	if cfg != nil && cfg.Affiliate != nil {
		referralBaseURL = cfg.Affiliate.ReferralBaseURL
	}

	return &affiliateService{
		affiliateRepo:   affiliateRepo,
		qrcodeService:   qrcodeService,
		referralBaseURL: referralBaseURL,
	}
}

// CreateAffiliate enrolls a user as a referral partner.
func (s *affiliateService) CreateAffiliate(ctx context.Context, input *usecase.AffiliateInput) (*entity.Affiliate, error) {
	now := time.Now().UTC()
	affiliate := &entity.Affiliate{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Code:           normalizeCode(input.Code),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		CommissionRate: input.CommissionRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.affiliateRepo.CreateAffiliate(ctx, affiliate); err != nil {
		if errors.Is(err, repository.ErrDuplicateAffiliateCode) {
			return nil, domainerrors.ErrAffiliateCodeTaken
		}

		return nil, errors.Wrap(err, "failed to create affiliate")
	}

	return affiliate, nil
}

// GetAffiliate retrieves an affiliate by ID.
func (s *affiliateService) GetAffiliate(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	affiliate, err := s.affiliateRepo.FindAffiliateByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, domainerrors.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by id")
	}

	return affiliate, nil
}

// GetAffiliateByCode resolves a referral code to its affiliate.
func (s *affiliateService) GetAffiliateByCode(ctx context.Context, code string) (*entity.Affiliate, error) {
	affiliate, err := s.affiliateRepo.FindAffiliateByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, domainerrors.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by code")
	}

	return affiliate, nil
}

// UpdateAffiliate persists changes to an affiliate.
func (s *affiliateService) UpdateAffiliate(ctx context.Context, id uuid.UUID, input *usecase.AffiliateInput) (*entity.Affiliate, error) {
	affiliate, err := s.GetAffiliate(ctx, id)
	if err != nil {
		return nil, err
	}

	affiliate.Code = normalizeCode(input.Code)
	affiliate.Name = input.Name
	affiliate.Email = input.Email
	affiliate.Phone = input.Phone
	affiliate.CommissionRate = input.CommissionRate
	affiliate.UpdatedAt = time.Now().UTC()

	if err := s.affiliateRepo.UpdateAffiliate(ctx, affiliate); err != nil {
		if errors.Is(err, repository.ErrDuplicateAffiliateCode) {
			return nil, domainerrors.ErrAffiliateCodeTaken
		}

		return nil, errors.Wrap(err, "failed to update affiliate")
	}

	return affiliate, nil
}

// ListAffiliates retrieves a page of affiliates.
func (s *affiliateService) ListAffiliates(ctx context.Context, query usecase.PageQuery) (repository.Page[*entity.Affiliate], error) {
	page, err := s.affiliateRepo.ListAffiliates(ctx, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Affiliate]{}, errors.Wrap(err, "failed to list affiliates")
	}

	return page, nil
}

// DeleteAffiliate removes an affiliate.
func (s *affiliateService) DeleteAffiliate(ctx context.Context, id uuid.UUID) error {
	if err := s.affiliateRepo.DeleteAffiliate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return domainerrors.ErrAffiliateNotFound
		}

		return errors.Wrap(err, "failed to delete affiliate")
	}

	return nil
}

// ReferralLink builds the shareable referral URL for an affiliate.
func (s *affiliateService) ReferralLink(affiliate *entity.Affiliate) string {
	return strings.TrimRight(s.referralBaseURL, "/") + "/" + affiliate.Code
}

// GenerateReferralQR renders the affiliate's referral QR code as PNG.
func (s *affiliateService) GenerateReferralQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	affiliate, err := s.GetAffiliate(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateReferralQR(affiliate.ID, affiliate.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

// ResolveReferralQR maps scanned QR payload back to the affiliate.
func (s *affiliateService) ResolveReferralQR(ctx context.Context, qrData string) (*entity.Affiliate, error) {
	affiliateID, err := s.qrcodeService.ParseReferralQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidReferralQR.WithDetails(err.Error())
	}

	return s.GetAffiliate(ctx, affiliateID)
}

// CreditCommission credits commission for a sale attributed to a referral
// code, at the affiliate's configured rate.
func (s *affiliateService) CreditCommission(ctx context.Context, code string, saleAmount float64) error {
	affiliate, err := s.GetAffiliateByCode(ctx, code)
	if err != nil {
		return err
	}

	commission := saleAmount * affiliate.CommissionRate
	if commission <= 0 {
		return nil
	}

	if err := s.affiliateRepo.CreditBalance(ctx, affiliate.ID, commission); err != nil {
		return errors.Wrap(err, "failed to credit affiliate balance")
	}

	return nil
}

// normalizeCode canonicalizes referral codes for storage and lookup.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
