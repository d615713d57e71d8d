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

// companyRepository implements the repository.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// CreateCompany persists a new company.
func (repo *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// FindCompanyByID retrieves a company by its unique ID.
func (repo *companyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

// UpdateCompany persists changes to an existing company.
func (repo *companyRepository) UpdateCompany(ctx context.Context, company *entity.Company) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{
			"name":            company.Name,
			"registration_no": company.RegistrationNo,
			"email":           company.Email,
			"phone":           company.Phone,
			"website":         company.Website,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update company")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// ListCompanies retrieves a page of companies.
func (repo *companyRepository) ListCompanies(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Company], error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.CompanyModel{})
	if page.Search != "" {
		query = query.Where("name ILIKE ?", "%"+page.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return repository.Page[*entity.Company]{}, errors.Wrap(err, "failed to count companies")
	}

	var companyModels []*model.CompanyModel
	if err := query.
		Order("name ASC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&companyModels).Error; err != nil {
		return repository.Page[*entity.Company]{}, errors.Wrap(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyM := range companyModels {
		companies = append(companies, toCompanyDomain(companyM))
	}

	return repository.Page[*entity.Company]{
		Items:       companies,
		TotalCount:  total,
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
	}, nil
}

// DeleteCompany removes a company by its ID (soft delete).
func (repo *companyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CompanyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete company")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		RegistrationNo: data.RegistrationNo,
		Email:          data.Email,
		Phone:          data.Phone,
		Website:        data.Website,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel.
func fromCompanyDomain(company *entity.Company) *model.CompanyModel {
	if company == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:             company.ID,
		OwnerID:        company.OwnerID,
		Name:           company.Name,
		RegistrationNo: company.RegistrationNo,
		Email:          company.Email,
		Phone:          company.Phone,
		Website:        company.Website,
		CreatedAt:      company.CreatedAt,
		UpdatedAt:      company.UpdatedAt,
	}
}
