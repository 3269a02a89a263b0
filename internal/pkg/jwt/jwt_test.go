package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "Admin", "test_secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Admin", claims.UserType)
	assert.Equal(t, "gymdesk", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "Admin", "test_secret", 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "Admin", "test_secret", -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "test_secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", "test_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
