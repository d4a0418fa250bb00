package impl

import (
	"context"
	"log/slog"

	deliverycontext "voyage/internal/delivery/context"
	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/repository"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	tripRepo repository.TripRepository
	logger   *slog.Logger
}

// TripServiceParams holds dependencies for tripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TripRepo repository.TripRepository
	Logger   *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		tripRepo: params.TripRepo,
		logger:   params.Logger,
	}
}

func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTrip validates and stores a new trip for the authenticated owner.
func (srv *tripService) CreateTrip(ctx context.Context, input *usecase.TripInput) (*entity.Trip, error) {
	srv.log(ctx).Debug("Creating trip", slog.Any("ownerID", input.OwnerID), slog.String("title", input.Title))

	trip, err := buildTripEntity(input)
	if err != nil {
		return nil, err
	}

	createdTrip, err := srv.tripRepo.Create(ctx, trip)
	if err != nil {
		srv.log(ctx).Error("Failed to create trip", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create trip")
	}

	return createdTrip, nil
}

// ListTrips returns every trip belonging to the owner.
func (srv *tripService) ListTrips(ctx context.Context, ownerID uuid.UUID) ([]*entity.Trip, error) {
	trips, err := srv.tripRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list trips", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list trips")
	}

	return trips, nil
}

// GetTrip returns a single trip. Trips belonging to other users resolve to
// not-found so their existence is never disclosed.
func (srv *tripService) GetTrip(ctx context.Context, tripID, ownerID uuid.UUID) (*entity.Trip, error) {
	trip, err := srv.tripRepo.FindByIDAndOwner(ctx, tripID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to get trip")
	}

	return trip, nil
}

// UpdateTrip replaces the mutable fields of an existing trip.
func (srv *tripService) UpdateTrip(ctx context.Context, tripID uuid.UUID, input *usecase.TripInput) (*entity.Trip, error) {
	srv.log(ctx).Debug("Updating trip", slog.Any("tripID", tripID), slog.Any("ownerID", input.OwnerID))

	trip, err := buildTripEntity(input)
	if err != nil {
		return nil, err
	}
	trip.ID = tripID

	updatedTrip, err := srv.tripRepo.Update(ctx, trip)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		srv.log(ctx).Error("Failed to update trip", slog.Any("tripID", tripID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update trip")
	}

	return updatedTrip, nil
}

// DeleteTrip removes a trip belonging to the owner.
func (srv *tripService) DeleteTrip(ctx context.Context, tripID, ownerID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting trip", slog.Any("tripID", tripID), slog.Any("ownerID", ownerID))

	if err := srv.tripRepo.DeleteByIDAndOwner(ctx, tripID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return domainerrors.ErrTripNotFound
		}

		srv.log(ctx).Error("Failed to delete trip", slog.Any("tripID", tripID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete trip")
	}

	return nil
}

func buildTripEntity(input *usecase.TripInput) (*entity.Trip, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "end date must not be before start date")
	}

	status := input.Status
	if status == "" {
		status = entity.TripStatusPlanning
	}
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown trip status")
	}

	numberOfTravelers := input.NumberOfTravelers
	if numberOfTravelers < 1 {
		numberOfTravelers = 1
	}

	return &entity.Trip{
		UserID:            input.OwnerID,
		Title:             input.Title,
		Description:       input.Description,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Destinations:      input.Destinations,
		Budget:            input.Budget,
		Activities:        input.Activities,
		TravelStyle:       input.TravelStyle,
		NumberOfTravelers: numberOfTravelers,
		Status:            status,
		IsPublic:          input.IsPublic,
	}, nil
}
