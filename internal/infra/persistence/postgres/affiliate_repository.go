package postgres

import (
	"context"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// affiliateRepository implements the repository.AffiliateRepository interface.
type affiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository is the constructor for affiliateRepository.
func NewAffiliateRepository(db *gorm.DB) repository.AffiliateRepository {
	return &affiliateRepository{
		db: db,
	}
}

// CreateAffiliate persists a new affiliate.
func (repo *affiliateRepository) CreateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error {
	affiliateM := fromAffiliateDomain(affiliate)

	if err := repo.db.WithContext(ctx).Create(affiliateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAffiliateCode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliate")
	}

	affiliate.ID = affiliateM.ID
	affiliate.CreatedAt = affiliateM.CreatedAt
	affiliate.UpdatedAt = affiliateM.UpdatedAt

	return nil
}

// FindAffiliateByID retrieves an affiliate by its unique ID.
func (repo *affiliateRepository) FindAffiliateByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by ID")
	}

	return toAffiliateDomain(&affiliateM), nil
}

// FindAffiliateByCode retrieves an affiliate by referral code.
func (repo *affiliateRepository) FindAffiliateByCode(ctx context.Context, code string) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by code")
	}

	return toAffiliateDomain(&affiliateM), nil
}

// UpdateAffiliate persists changes to an existing affiliate.
func (repo *affiliateRepository) UpdateAffiliate(ctx context.Context, affiliate *entity.Affiliate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AffiliateModel{}).
		Where("id = ?", affiliate.ID).
		Updates(map[string]any{
			"code":            affiliate.Code,
			"name":            affiliate.Name,
			"email":           affiliate.Email,
			"phone":           affiliate.Phone,
			"commission_rate": affiliate.CommissionRate,
			"is_active":       affiliate.Active,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAffiliateCode
		}

		return errors.Wrap(result.Error, "failed to update affiliate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAffiliateNotFound
	}

	return nil
}

// CreditBalance atomically adds amount to the affiliate's balance.
func (repo *affiliateRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AffiliateModel{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit affiliate balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAffiliateNotFound
	}

	return nil
}

// ListAffiliates retrieves a page of affiliates, optionally filtered by a
// search term matched against name, email and code.
func (repo *affiliateRepository) ListAffiliates(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Affiliate], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.AffiliateModel{})
	if page.Search != "" {
		pattern := "%" + page.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR code ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.Affiliate]{}, errors.Wrap(err, "failed to count affiliates")
	}

	var affiliateModels []*model.AffiliateModel
	if err := query.
		Order("created_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&affiliateModels).Error; err != nil {
		return repository.Page[*entity.Affiliate]{}, errors.Wrap(err, "failed to list affiliates")
	}

	affiliates := make([]*entity.Affiliate, 0, len(affiliateModels))
	for _, affiliateM := range affiliateModels {
		affiliates = append(affiliates, toAffiliateDomain(affiliateM))
	}

	return repository.Page[*entity.Affiliate]{
		Items:       affiliates,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// DeleteAffiliate removes an affiliate by its ID (soft delete).
func (repo *affiliateRepository) DeleteAffiliate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AffiliateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete affiliate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAffiliateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAffiliateDomain converts a GORM AffiliateModel to a domain Affiliate entity.
func toAffiliateDomain(data *model.AffiliateModel) *entity.Affiliate {
	if data == nil {
		return nil
	}

	return &entity.Affiliate{
		ID:             data.ID,
		UserID:         data.UserID,
		Code:           data.Code,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		CommissionRate: data.CommissionRate,
		Balance:        data.Balance,
		Active:         data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAffiliateDomain converts a domain Affiliate entity to a GORM AffiliateModel.
func fromAffiliateDomain(affiliate *entity.Affiliate) *model.AffiliateModel {
	if affiliate == nil {
		return nil
	}

	return &model.AffiliateModel{
		ID:             affiliate.ID,
		UserID:         affiliate.UserID,
		Code:           affiliate.Code,
		Name:           affiliate.Name,
		Email:          affiliate.Email,
		Phone:          affiliate.Phone,
		CommissionRate: affiliate.CommissionRate,
		Balance:        affiliate.Balance,
		IsActive:       affiliate.Active,
		CreatedAt:      affiliate.CreatedAt,
		UpdatedAt:      affiliate.UpdatedAt,
	}
}
