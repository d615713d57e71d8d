package postgres

import (
	"context"
	"fmt"

	"conectone/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewAffiliateRepository creates a new affiliate repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAffiliateRepository() repository.AffiliateRepository {
	return NewAffiliateRepository(f.tx)
}

// NewLearnerRepository creates a new learner repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewLearnerRepository() repository.LearnerRepository {
	return NewLearnerRepository(f.tx)
}

// NewClassRepository creates a new class repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewClassRepository() repository.ClassRepository {
	return NewClassRepository(f.tx)
}

// NewFilingRepository creates a new filing repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFilingRepository() repository.FilingRepository {
	return NewFilingRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Ensure a panic inside the callback still rolls the transaction back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
