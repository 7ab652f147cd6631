package services

import (
	"context"
	"testing"

	"github.com/Avis17/karunya-draw-tracker/internal/config"
	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories/memory"
	pkgjwt "github.com/Avis17/karunya-draw-tracker/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
	return NewAuthService(memory.NewAdminUserRepository(), cfg)
}

func TestCreateAdminHashesPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, "Site Admin", "admin@example.com", "s3cret-pass", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.Equal(t, "admin", admin.Role)
	// The hash never leaves the service
	assert.Empty(t, admin.Password)

	_, err = svc.CreateAdmin(ctx, "Dup", "admin@example.com", "other", "admin")
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "Site Admin", "admin@example.com", "s3cret-pass", "admin")
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)

	claims, err := pkgjwt.Validate(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "Site Admin", "admin@example.com", "s3cret-pass", "admin")
	require.NoError(t, err)

	var authErr *models.AuthError

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorAs(t, err, &authErr)

	// Unknown account produces the same error as a bad password
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorAs(t, err, &authErr)
}
