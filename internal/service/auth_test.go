package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/security"
)

const authTestSecret = "unit-test-signing-secret"

func newAuthFixture() (*MockUserRepo, security.TokenManager, AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(authTestSecret, time.Hour, 24*time.Hour)
	return userRepo, tokens, NewAuthService(userRepo, tokens)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, pair, err := svc.Register(ctx, RegisterInput{
			Email:     "new@example.com",
			Password:  "s3cret-pass",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.UserRoleRenter, user.UserRole)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))

		claims, err := tokens.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, "new@example.com", claims.Email)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		existing := &domain.User{ID: uuid.New(), Email: "taken@example.com"}
		userRepo.On("GetByEmail", ctx, "taken@example.com").Return(existing, nil)

		_, _, err := svc.Register(ctx, RegisterInput{Email: "taken@example.com", Password: "pw"})

		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           uuid.New(),
			Email:        "u@example.com",
			PasswordHash: string(hash),
			UserRole:     domain.UserRoleRenter,
			Status:       domain.UserStatusActive,
		}
	}

	t.Run("Success", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		u := activeUser()
		userRepo.On("GetByEmail", ctx, u.Email).Return(u, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		got, pair, err := svc.Login(ctx, u.Email, "right-pass")

		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.NotNil(t, got.LastLoginAt)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		u := activeUser()
		userRepo.On("GetByEmail", ctx, u.Email).Return(u, nil)

		_, _, err := svc.Login(ctx, u.Email, "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@example.com", "right-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("SuspendedUser", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		u := activeUser()
		u.Status = domain.UserStatusSuspended
		userRepo.On("GetByEmail", ctx, u.Email).Return(u, nil)

		_, _, err := svc.Login(ctx, u.Email, "right-pass")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{
		ID:       uuid.New(),
		Email:    "u@example.com",
		UserRole: domain.UserRoleRenter,
		Status:   domain.UserStatusActive,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email)
		require.NoError(t, err)
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

		pair, err := svc.Refresh(ctx, refresh)

		require.NoError(t, err)
		claims, err := tokens.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		access, err := tokens.GenerateAccessToken(user.ID, user.Email, user.UserRole)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, access)

		assert.ErrorIs(t, err, ErrUnauthorized)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("SuspendedUser", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email)
		require.NoError(t, err)
		suspended := *user
		suspended.Status = domain.UserStatusSuspended
		userRepo.On("GetByID", ctx, user.ID).Return(&suspended, nil)

		_, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
