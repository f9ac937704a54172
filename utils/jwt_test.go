package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcowork/config"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", "renter@example.com", "renter", time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "renter@example.com", claims.Email)
	assert.Equal(t, "renter", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", "renter@example.com", "renter", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestConfiguredSecretIsHonored(t *testing.T) {
	token, err := GenerateToken("user-42", "renter@example.com", "renter", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	// Tokens minted under the old key no longer validate.
	_, err = ExtractClaims(token)
	assert.Error(t, err)

	// New tokens round-trip under the configured key.
	rotated, err := GenerateToken("user-42", "renter@example.com", "renter", time.Hour)
	require.NoError(t, err)
	claims, err := ExtractClaims(rotated)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}
