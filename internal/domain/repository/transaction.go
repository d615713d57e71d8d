package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use case layer demand atomicity without depending on GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error the transaction is rolled back, otherwise committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewAffiliateRepository returns an AffiliateRepository bound to the current transaction.
	NewAffiliateRepository() AffiliateRepository

	// NewLearnerRepository returns a LearnerRepository bound to the current transaction.
	NewLearnerRepository() LearnerRepository

	// NewClassRepository returns a ClassRepository bound to the current transaction.
	NewClassRepository() ClassRepository

	// NewFilingRepository returns a FilingRepository bound to the current transaction.
	NewFilingRepository() FilingRepository
}
