// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt), keeping the
// domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// freshly generated on every call, so hashing the same plaintext twice
	// yields different values.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash using the
	// algorithm's own constant-time comparison. An empty stored hash (a
	// delegated account has no password) is an ordinary false, not an error.
	Check(password, hash string) bool
}
