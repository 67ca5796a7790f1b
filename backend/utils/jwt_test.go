package utils

import (
	"testing"
	"time"

	"saddwy/backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret"}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(42, PurposeAccess, time.Hour, cfg)
	require.NoError(t, err)

	userID, err := ParseToken(token, PurposeAccess, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExpiredTokenAlwaysFails(t *testing.T) {
	cfg := testConfig()

	// Correctly signed but already expired.
	token, err := GenerateToken(42, PurposeAccess, -time.Minute, cfg)
	require.NoError(t, err)

	_, err = ParseToken(token, PurposeAccess, cfg)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenPurposeMismatchRejected(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(42, PurposeValidate, time.Hour, cfg)
	require.NoError(t, err)

	// A validation token cannot be redeemed as a session or recovery token.
	_, err = ParseToken(token, PurposeAccess, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken(token, PurposeRecovery, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(42, PurposeAccess, time.Hour, cfg)
	require.NoError(t, err)

	_, err = ParseToken(token+"x", PurposeAccess, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := &config.Config{JWTSecret: "othersecret"}
	_, err = ParseToken(token, PurposeAccess, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenPair(t *testing.T) {
	cfg := testConfig()

	access, refresh, err := GenerateTokenPair(7, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	userID, err := ParseToken(access, PurposeAccess, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	userID, err = ParseToken(refresh, PurposeRefresh, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}
