package repository

import (
	"context"
	"errors"

	"voyage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTripNotFound is a domain-specific error returned when a trip is not
// found for the given owner. A trip belonging to another account is
// indistinguishable from one that does not exist.
var ErrTripNotFound = errors.New("trip not found")

// TripRepository defines the standard operations for trip persistence.
// Every read and write is scoped to the owning account.
type TripRepository interface {
	// Create persists a new trip for the given owner and returns it with
	// generated fields populated.
	Create(ctx context.Context, trip *entity.Trip) (*entity.Trip, error)

	// FindByOwner retrieves all trips belonging to the given account.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error)

	// FindByIDAndOwner retrieves a single trip by id, only if the given
	// account owns it.
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Trip, error)

	// Update replaces an existing trip owned by the given account and
	// returns the stored result.
	Update(ctx context.Context, trip *entity.Trip) (*entity.Trip, error)

	// DeleteByIDAndOwner removes a trip by id, only if the given account
	// owns it.
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error
}
