package google

import (
	"net/url"
	"testing"

	"voyage/config"
	"voyage/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService() *oauthService {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_client_secret",
			RedirectURI:  "http://localhost:8080/api/auth/google/callback",
		},
	}

	return NewOAuthService(cfg).(*oauthService)
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	svc := newTestOAuthService()

	authURL, state := svc.BuildAuthorizationURL()
	require.NotEmpty(t, state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/api/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, defaultScopes, query.Get("scope"))
	assert.Equal(t, state, query.Get("state"))
}

func TestOAuthService_StateIsSingleUse(t *testing.T) {
	svc := newTestOAuthService()

	_, state := svc.BuildAuthorizationURL()

	assert.True(t, svc.ValidateState(state))
	// Consumed on first validation; replays fail.
	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_UnknownStateIsRejected(t *testing.T) {
	svc := newTestOAuthService()

	assert.False(t, svc.ValidateState("never-issued"))
	assert.False(t, svc.ValidateState(""))
}

func TestOAuthService_StatesAreUnique(t *testing.T) {
	svc := newTestOAuthService()

	_, first := svc.BuildAuthorizationURL()
	_, second := svc.BuildAuthorizationURL()

	assert.NotEqual(t, first, second)
}

func TestOAuthService_Provider(t *testing.T) {
	svc := newTestOAuthService()

	assert.Equal(t, entity.ProviderGoogle, svc.Provider())
}
