package auth

import (
	"testing"
	"time"

	"ecoconnect/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestAuthConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}
	}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, "wastepicker")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "wastepicker", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig(0))
	assert.NoError(t, err)

	// Garbage token
	claims, err := jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Token signed with a different secret
	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	foreignToken, err := otherService.GenerateToken(uuid.New(), "household")
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(foreignToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), "household")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
