package impl

import (
	"context"
	"testing"

	"conectone/config"
	"conectone/internal/domain/constants"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"
	mockSvc "conectone/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userTestConfig() *config.Config {
	return &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireNumbers:   true,
		},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()

	mockHasher.On("Hash", "Secret1234").Return("hashed", nil)
	mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := service.Register(ctx, registerInput("User@Example.COM", "Thandi", "Secret1234"))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, []string{constants.RoleUser}, user.Roles)
	assert.True(t, user.Active)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no uppercase", "secret1234"},
		{"no digit", "SecretSecret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), registerInput("a@b.co", "A", tc.password))
			require.Error(t, err)
			assert.ErrorContains(t, err, domainerrors.ErrPasswordStrength.Message())
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	mockHasher.On("Hash", "Secret1234").Return("hashed", nil)
	mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, registerInput("taken@example.com", "A", "Secret1234"))
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
		Roles:        []string{constants.RoleUser},
		Active:       true,
	}

	mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil)
	mockHasher.On("Check", "Secret1234", "hashed").Return(true)
	mockTokens.On("GenerateTokens", user.ID, user.Roles).Return("access", "refresh", nil)

	tokens, loggedIn, err := service.Login(ctx, " User@Example.com ", "Secret1234")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hashed", Active: true}

	mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil)
	mockHasher.On("Check", "wrong", "hashed").Return(false)

	_, _, err := service.Login(ctx, "user@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hashed", Active: false}

	mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil)

	_, _, err := service.Login(ctx, "user@example.com", "Secret1234")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := service.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshTokens_Invalid(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	mockTokens.On("ValidateRefreshToken", "bad-token").
		Return(nil, assert.AnError)

	_, err := service.RefreshTokens(context.Background(), "bad-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_DeactivateUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokens, userTestConfig(), discardLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Active: true}

	mockUserRepo.On("FindUserByID", ctx, user.ID).Return(user, nil)
	mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return !u.Active
	})).Return(nil)

	require.NoError(t, service.DeactivateUser(ctx, user.ID))
}
