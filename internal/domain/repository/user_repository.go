// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"voyage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never the implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	// The lookup is case-insensitive; emails are stored lowercase.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves a single account by Google's subject identifier.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new account and returns it with generated fields
	// populated. Uniqueness of the email and the Google id is enforced by
	// database constraints; a violation surfaces as a duplicate-account
	// error, never a silent overwrite.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdatePasswordHash replaces the stored credential hash for an account.
	// This is the only post-creation mutation of an account.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, newHash string) error
}
