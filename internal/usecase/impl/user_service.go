// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"conectone/config"
	"conectone/internal/domain/constants"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/domain/service"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	strength     *config.PasswordStrengthConfig
	logger       *slog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		strength:     strength,
		logger:       logger,
	}
}

// Register creates a new platform account.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := s.checkPasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{constants.RoleUser}
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	s.logger.Info("User registered", slog.String("userID", user.ID.String()), slog.String("email", email))

	return user, nil
}

// Login verifies credentials and issues a token pair.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthTokens, *entity.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.Active || !s.hasher.Check(password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !user.Active {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return s.issueTokens(user)
}

// GetUser retrieves an account by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ListUsers retrieves a page of accounts.
func (s *userService) ListUsers(ctx context.Context, query usecase.PageQuery) (repository.Page[*entity.User], error) {
	page, err := s.userRepo.ListUsers(ctx, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.User]{}, errors.Wrap(err, "failed to list users")
	}

	return page, nil
}

// DeactivateUser disables an account without deleting it.
func (s *userService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	if !user.Active {
		return nil
	}

	user.Active = false
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return errors.Wrap(err, "failed to deactivate user")
	}

	s.logger.Info("User deactivated", slog.String("userID", id.String()))

	return nil
}

func (s *userService) issueTokens(user *entity.User) (*usecase.AuthTokens, error) {
	access, refresh, err := s.tokenService.GenerateTokens(user.ID, user.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) checkPasswordStrength(password string) error {
	if s.strength == nil {
		return nil
	}

	if len(password) < s.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if s.strength.MaxLength > 0 && len(password) > s.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	if s.strength.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs an uppercase letter")
	}
	if s.strength.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a digit")
	}

	return nil
}
