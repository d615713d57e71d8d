package impl

import (
	"context"
	"testing"

	"conectone/config"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"
	mockSvc "conectone/internal/mocks/service"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func affiliateTestConfig() *config.Config {
	return &config.Config{
		Affiliate: &config.AffiliateConfig{
			ReferralBaseURL: "https://conectone.example/r/",
		},
	}
}

func TestAffiliateService_CreateAffiliate_NormalizesCode(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	mockAffRepo.On("CreateAffiliate", ctx, mock.MatchedBy(func(a *entity.Affiliate) bool {
		return a.Code == "PARTNER1" && a.Active
	})).Return(nil)

	affiliate, err := service.CreateAffiliate(ctx, &usecase.AffiliateInput{
		UserID:         uuid.New(),
		Code:           " partner1 ",
		Name:           "Partner One",
		CommissionRate: 0.05,
	})
	require.NoError(t, err)
	assert.Equal(t, "PARTNER1", affiliate.Code)
}

func TestAffiliateService_CreateAffiliate_CodeTaken(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	mockAffRepo.On("CreateAffiliate", ctx, mock.AnythingOfType("*entity.Affiliate")).
		Return(repository.ErrDuplicateAffiliateCode)

	_, err := service.CreateAffiliate(ctx, &usecase.AffiliateInput{Code: "TAKEN"})
	assert.ErrorIs(t, err, domainerrors.ErrAffiliateCodeTaken)
}

func TestAffiliateService_ReferralLink(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	link := service.ReferralLink(&entity.Affiliate{Code: "PARTNER1"})
	assert.Equal(t, "https://conectone.example/r/PARTNER1", link)
}

func TestAffiliateService_GenerateReferralQR(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	affiliate := &entity.Affiliate{ID: uuid.New(), Code: "PARTNER1"}

	mockAffRepo.On("FindAffiliateByID", ctx, affiliate.ID).Return(affiliate, nil)
	mockQR.On("GenerateReferralQR", affiliate.ID, "PARTNER1").Return([]byte("png-bytes"), nil)

	png, err := service.GenerateReferralQR(ctx, affiliate.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestAffiliateService_ResolveReferralQR_Invalid(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	mockQR.On("ParseReferralQR", "garbage").Return(uuid.Nil, assert.AnError)

	_, err := service.ResolveReferralQR(context.Background(), "garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrInvalidReferralQR.Message())
}

func TestAffiliateService_CreditCommission(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	affiliate := &entity.Affiliate{ID: uuid.New(), Code: "PARTNER1", CommissionRate: 0.05}

	mockAffRepo.On("FindAffiliateByCode", ctx, "PARTNER1").Return(affiliate, nil)
	mockAffRepo.On("CreditBalance", ctx, affiliate.ID, 50.0).Return(nil)

	require.NoError(t, service.CreditCommission(ctx, "partner1", 1000))
}

func TestAffiliateService_CreditCommission_ZeroRateIsNoop(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	affiliate := &entity.Affiliate{ID: uuid.New(), Code: "FREE", CommissionRate: 0}

	mockAffRepo.On("FindAffiliateByCode", ctx, "FREE").Return(affiliate, nil)

	require.NoError(t, service.CreditCommission(ctx, "FREE", 1000))
	mockAffRepo.AssertNotCalled(t, "CreditBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestAffiliateService_GetAffiliate_NotFound(t *testing.T) {
	mockAffRepo := mockRepo.NewMockAffiliateRepository(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAffiliateService(mockAffRepo, mockQR, affiliateTestConfig())

	ctx := context.Background()
	id := uuid.New()
	mockAffRepo.On("FindAffiliateByID", ctx, id).Return(nil, repository.ErrAffiliateNotFound)

	_, err := service.GetAffiliate(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAffiliateNotFound)
}
