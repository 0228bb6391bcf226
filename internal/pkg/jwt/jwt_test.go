package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/pkg/config"
	pkgErrors "taskboard/pkg/errors"
)

func withConfig(t *testing.T, expire int) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{Auth: config.AuthConfig{JWT: config.JWTConfig{Secret: "test-secret", AccessTokenExpire: expire}}}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

func TestGenerateAndValidate(t *testing.T) {
	withConfig(t, 60)

	token, err := GenerateAccessToken("u_1", "Alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u_1", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "u_1", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	withConfig(t, -10)

	token, err := GenerateAccessToken("u_1", "Alice", "alice@example.com")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Equal(t, pkgErrors.ErrTokenExpired, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	withConfig(t, 60)
	token, err := GenerateAccessToken("u_1", "Alice", "alice@example.com")
	require.NoError(t, err)

	config.GlobalConfig.Auth.JWT.Secret = "other"
	_, err = ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeUnauthorized, pkgErrors.GetCode(err))
}
