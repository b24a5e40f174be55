package services

import (
	"context"
	"testing"

	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthServiceWith(store)
	ctx := context.Background()

	user, tokens, err := svc.Register(ctx, &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, models.ProviderPassword, user.Provider)

	// The very first registered account is the admin.
	assert.Equal(t, models.RoleAdmin, user.Role)

	loggedIn, tokens, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := NewAuthServiceWith(newFakeStore())

	_, _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthServiceWith(store)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "other456",
		ConfirmPassword: "other456",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLoginWrongCredentials(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthServiceWith(store)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, _, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestRefreshRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthServiceWith(store)
	ctx := context.Background()

	_, tokens, err := svc.Register(ctx, &models.RegisterRequest{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestOAuthConfigUnsupportedProvider(t *testing.T) {
	svc := NewAuthServiceWith(newFakeStore())

	_, err := svc.OAuthConfig("facebook")
	assert.ErrorIs(t, err, models.ErrValidation)
}
