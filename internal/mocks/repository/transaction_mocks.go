package repository

import (
	"context"

	"conectone/internal/domain/repository"
)

// StubTransactionManager runs the callback inline against a fixed factory,
// standing in for a real database transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StubRepositoryFactory hands back the configured repositories regardless of
// transaction scope.
type StubRepositoryFactory struct {
	Users      repository.UserRepository
	Affiliates repository.AffiliateRepository
	Learners   repository.LearnerRepository
	Classes    repository.ClassRepository
	Filings    repository.FilingRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) NewAffiliateRepository() repository.AffiliateRepository {
	return f.Affiliates
}

func (f *StubRepositoryFactory) NewLearnerRepository() repository.LearnerRepository {
	return f.Learners
}

func (f *StubRepositoryFactory) NewClassRepository() repository.ClassRepository {
	return f.Classes
}

func (f *StubRepositoryFactory) NewFilingRepository() repository.FilingRepository {
	return f.Filings
}
