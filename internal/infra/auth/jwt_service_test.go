package auth

import (
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsSwappedTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Different secrets sign each type, so a swapped token fails verification.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongTypeClaim(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }

	accessToken, _, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TokenDurations(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())

	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTTL: time.Hour}
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetAccessTokenDuration())
}
