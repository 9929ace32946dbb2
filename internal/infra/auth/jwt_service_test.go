package auth

import (
	"testing"
	"time"

	"healthvault/config"
	"healthvault/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	return cfg
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := newJWTTestConfig()
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, "doctor")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "doctor", accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	// The role only rides on the access token.
	assert.Empty(t, refreshClaims.Role)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), "patient")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	otherCfg := newJWTTestConfig()
	otherCfg.SecretKey.Access = "a-completely-different-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "patient")
	require.NoError(t, err)

	_, err = otherSvc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newJWTTestConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "patient")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	_, first, err := svc.GenerateTokens(userID, "patient")
	require.NoError(t, err)
	_, second, err := svc.GenerateTokens(userID, "patient")
	require.NoError(t, err)

	// The JTI claim keeps rotated tokens distinct even within one second.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	hash := svc.HashToken("token")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashToken("token"))
	assert.NotEqual(t, hash, svc.HashToken("other"))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
