package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
	jwtsvc "portfolio/internal/pkg/jwt"
)

func setupAuthService(t *testing.T) (*Service, *jwtsvc.Service) {
	t.Helper()

	db, err := database.ConnectPrimary(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NoError(t, db.Create(&User{
		Email:        "owner@example.com",
		PasswordHash: hash,
		Name:         "Owner",
		Role:         RoleOwner,
	}).Error)

	j := jwtsvc.New("test-secret", time.Hour)
	return NewService(NewRepository(db), j), j
}

func TestLogin_Success(t *testing.T) {
	svc, j := setupAuthService(t)

	token, user, err := svc.Login(context.Background(), "owner@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, RoleOwner, user.Role)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, RoleOwner, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), "owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	_, err = svc.Me(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
