package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("user-1", "secret", time.Hour, "loan-ledger-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTExpired(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-1", "secret", -time.Minute, "loan-ledger-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTMissingSubject(t *testing.T) {
	token, _, err := utils.GenerateJWT("", "secret", time.Hour, "loan-ledger-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, utils.ErrMissingSubject)
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("correct horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong horse", hash))
	assert.False(t, utils.CheckPasswordHash("anything", ""))
}
