// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create a platform account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Roles    []string
}

// AuthTokens is the token pair returned by login and refresh.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// PageQuery carries paging and search parameters from the delivery layer.
type PageQuery struct {
	Page     int
	PageSize int
	Search   string
}

// PageRequest converts the query to a repository page request.
func (q PageQuery) PageRequest() repository.PageRequest {
	return repository.PageRequest{
		Page:     q.Page,
		PageSize: q.PageSize,
		Search:   q.Search,
	}
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// Register creates a new platform account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthTokens, *entity.User, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)

	// GetUser retrieves an account by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves a page of accounts.
	ListUsers(ctx context.Context, query PageQuery) (repository.Page[*entity.User], error)

	// DeactivateUser disables an account without deleting it.
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}
