package usecase

import (
	"context"
	"time"

	"voyage/internal/domain/entity"

	"github.com/google/uuid"
)

// TripInput defines the data required to create or replace a trip. The
// owner always comes from the authenticated request, never from the body.
type TripInput struct {
	OwnerID           uuid.UUID
	Title             string
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	Destinations      []entity.Location
	Budget            entity.Budget
	Activities        []entity.Activity
	TravelStyle       []string
	NumberOfTravelers int
	Status            entity.TripStatus
	IsPublic          bool
}

// TripUsecase defines the interface for trip business operations. Every
// operation is scoped to the owner; other users' trips are invisible.
type TripUsecase interface {
	CreateTrip(ctx context.Context, input *TripInput) (*entity.Trip, error)
	ListTrips(ctx context.Context, ownerID uuid.UUID) ([]*entity.Trip, error)
	GetTrip(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, input *TripInput) (*entity.Trip, error)
	DeleteTrip(ctx context.Context, tripID, ownerID uuid.UUID) error
}
