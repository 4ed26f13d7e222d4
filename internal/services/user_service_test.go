package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub_backend/internal/auth"
	"stayhub_backend/internal/config"
	"stayhub_backend/internal/models"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/pkg/apperrors"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestCreateUser(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	user, err := service.CreateUser(nil, &dto.CreateUserRequest{
		Name:     "Bob Renter",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
		Role:     "renter",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.Equal(t, models.UserRoleRenter, user.Role)
	assert.True(t, user.Status)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	req := &dto.CreateUserRequest{
		Name:     "Bob Renter",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
		Role:     "renter",
	}
	_, err := service.CreateUser(nil, req)
	require.NoError(t, err)

	_, err = service.CreateUser(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestCreateUserShortPassword(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	_, err := service.CreateUser(nil, &dto.CreateUserRequest{
		Name:     "Bob Renter",
		Email:    "bob@example.com",
		Password: "short",
		Role:     "renter",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetUserByIDNotFound(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	_, err := service.GetUserByID(nil, uuid.New().String())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	user := repo.add(&models.User{Name: "Bob", Email: "bob@example.com", Role: models.UserRoleRenter})

	newName := "Robert"
	updated, err := service.UpdateUser(nil, user.ID, &dto.UpdateUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
}

func TestUpdateUserEmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	repo.add(&models.User{Name: "Alice", Email: "alice@example.com"})
	user := repo.add(&models.User{Name: "Bob", Email: "bob@example.com"})

	taken := "alice@example.com"
	_, err := service.UpdateUser(nil, user.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	user := repo.add(&models.User{Name: "Bob", Email: "bob@example.com"})

	require.NoError(t, service.DeleteUser(nil, user.ID))
	assert.ErrorIs(t, service.DeleteUser(nil, user.ID), apperrors.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	userService := NewUserService(repo)
	authService := NewAuthService(repo)

	_, err := userService.CreateUser(nil, &dto.CreateUserRequest{
		Name:     "Alice Host",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     "host",
	})
	require.NoError(t, err)

	result, err := authService.Login(nil, &dto.LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := auth.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "host", claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	userService := NewUserService(repo)
	authService := NewAuthService(repo)

	_, err := userService.CreateUser(nil, &dto.CreateUserRequest{
		Name:     "Alice Host",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     "host",
	})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, err = authService.Login(nil, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = authService.Login(nil, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
