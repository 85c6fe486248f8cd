package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartinventory/internal/core/apperror"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(NewJWTService(DefaultJWTConfig("test-secret")))
	require.NoError(t, svc.SeedUser("admin@smartinventory.com", "admin123", "John Admin", RoleAdmin))
	return svc
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t)

	session, user, err := svc.Login(context.Background(), Credentials{
		Email:    "admin@smartinventory.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "John Admin", user.Name)
	assert.Equal(t, RoleAdmin, user.Role)

	userCtx, err := svc.jwtService.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, "John Admin", userCtx.Name)
	assert.Equal(t, RoleAdmin, userCtx.Role)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := newTestService(t)

	_, user, err := svc.Login(context.Background(), Credentials{
		Email:    "Admin@SmartInventory.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@smartinventory.com", user.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, Credentials{Email: "admin@smartinventory.com", Password: "wrong"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	// Unknown account yields the same error shape.
	_, _, err = svc.Login(ctx, Credentials{Email: "nobody@smartinventory.com", Password: "admin123"})
	require.Error(t, err)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestValidateTokenRejectsForgedToken(t *testing.T) {
	svc := newTestService(t)

	other := NewJWTService(DefaultJWTConfig("other-secret"))
	token, _, err := other.GenerateToken(&User{ID: "x", Email: "x@x", Name: "X", Role: RoleAdmin})
	require.NoError(t, err)

	_, err = svc.jwtService.ValidateToken(token)
	assert.Error(t, err)
}
