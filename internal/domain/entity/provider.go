// Package entity contains the core business objects of the project.
package entity

// AuthProvider discriminates how an account authenticates. It is set at
// account creation and never changes afterwards.
type AuthProvider string

const (
	// ProviderLocal indicates the account authenticates with email and password.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle indicates the account authenticates through Google Sign-In.
	ProviderGoogle AuthProvider = "google"
)

// String returns the string representation of the AuthProvider.
func (p AuthProvider) String() string {
	return string(p)
}

// IsValid checks if the AuthProvider is a valid value.
func (p AuthProvider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle:
		return true
	default:
		return false
	}
}
