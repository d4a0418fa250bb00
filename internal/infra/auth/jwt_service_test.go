package auth

import (
	"testing"
	"time"

	"voyage/config"
	"voyage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = "test-signing-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_MissingSecretFails(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Verify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	claims, err := svc.Verify(tampered)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyTokenSignedWithOtherSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherSvc.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Verify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	claims, err := svc.Verify("not-a-jwt")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}
