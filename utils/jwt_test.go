package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	pair, err := GenerateTokenPair("uid-1", "jane@example.com", "jane", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	refreshClaims, err := ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", refreshClaims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	pair, err := GenerateTokenPair("uid-1", "jane@example.com", "jane", "user")
	require.NoError(t, err)

	// A refresh token must not pass access-token validation.
	_, err = ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}
