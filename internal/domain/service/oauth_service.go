package service

import (
	"context"

	"voyage/internal/domain/entity"
)

// OAuthUser is the identity assertion obtained from an OAuth provider after
// a successful sign-in. It is trusted without local secret verification.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (Google's 'sub' claim).
	Email         string              // Asserted email address.
	FirstName     string              // Given name; empty if the provider omits it.
	LastName      string              // Family name; empty if the provider omits it.
	AvatarURL     string              // URL to the user's profile picture.
	EmailVerified bool                // Whether the provider verified the email.
	Provider      entity.AuthProvider // The asserting provider.
}

// OAuthService defines the server-side OAuth authorization-code flow against
// an identity provider.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's consent URL carrying a
	// freshly issued state parameter for CSRF protection.
	BuildAuthorizationURL() (url string, state string)

	// ValidateState checks and consumes a state parameter returned by the
	// provider callback.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for the provider's access
	// token and fetches the user's identity assertion with it.
	ExchangeCode(ctx context.Context, code string) (*OAuthUser, error)

	// Provider returns which identity provider this service talks to.
	Provider() entity.AuthProvider
}
