// Package google implements the server-side Google OAuth flow: consent URL
// construction, CSRF state tracking, code exchange and identity retrieval.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"voyage/config"
	"voyage/internal/domain/entity"
	"voyage/internal/domain/service"
	"voyage/internal/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	stateTTL            = 10 * time.Minute
	defaultScopes       = "openid email profile"
	exchangeHTTPTimeout = 15 * time.Second
)

// oauthService handles the Google OAuth authorization-code flow.
type oauthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	// State storage for CSRF protection on the redirect flow.
	stateMu    sync.Mutex
	stateStore map[string]time.Time
}

// NewOAuthService creates a new Google OAuth service from configuration.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	scopes := defaultScopes
	var oauthCfg config.GoogleOAuthConfig
	if cfg != nil && cfg.GoogleOAuth != nil {
		oauthCfg = *cfg.GoogleOAuth
		if oauthCfg.Scopes != "" {
			scopes = oauthCfg.Scopes
		}
	}

	return &oauthService{
		clientID:     oauthCfg.ClientID,
		clientSecret: oauthCfg.ClientSecret,
		redirectURI:  oauthCfg.RedirectURI,
		scopes:       scopes,
		httpClient:   &http.Client{Timeout: exchangeHTTPTimeout},
		stateStore:   make(map[string]time.Time),
	}
}

// BuildAuthorizationURL constructs the Google consent URL with a fresh state
// parameter and remembers the state for later validation.
func (s *oauthService) BuildAuthorizationURL() (string, string) {
	state := s.generateState()
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode(), state
}

// ValidateState checks a callback's state parameter and consumes it so it
// cannot be replayed.
func (s *oauthService) ValidateState(state string) bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// Provider returns the OAuth provider type.
func (s *oauthService) Provider() entity.AuthProvider {
	return entity.ProviderGoogle
}

// ExchangeCode trades an authorization code for an access token and fetches
// the user's identity with it.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthUser, error) {
	accessToken, err := s.exchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.fetchUserInfo(ctx, accessToken)
}

func (s *oauthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func (s *oauthService) storeState(state string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)

	// Drop expired states while we hold the lock.
	now := time.Now()
	for st, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, st)
		}
	}
}

func (s *oauthService) exchangeCodeForToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

func (s *oauthService) fetchUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		GivenName     string `json:"given_name"`
		FamilyName    string `json:"family_name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         strings.ToLower(googleUser.Email),
		FirstName:     googleUser.GivenName,
		LastName:      googleUser.FamilyName,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
		Provider:      entity.ProviderGoogle,
	}, nil
}
