package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/repository"
	mockRepo "voyage/internal/mocks/repository"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripServiceFixtures struct {
	service  usecase.TripUsecase
	tripRepo *mockRepo.MockTripRepository
}

func createTestTripService(t *testing.T) tripServiceFixtures {
	tripRepo := mockRepo.NewMockTripRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTripService(TripServiceParams{
		TripRepo: tripRepo,
		Logger:   logger,
	})

	return tripServiceFixtures{
		service:  service,
		tripRepo: tripRepo,
	}
}

func validTripInput(ownerID uuid.UUID) *usecase.TripInput {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	return &usecase.TripInput{
		OwnerID:           ownerID,
		Title:             "Tokyo in autumn",
		Description:       "Two weeks around Kanto",
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, 14),
		Destinations:      []entity.Location{{City: "Tokyo", Country: "Japan"}},
		Budget:            entity.Budget{Amount: 3000, Currency: "USD"},
		NumberOfTravelers: 2,
		Status:            entity.TripStatusPlanning,
	}
}

func TestTripService_CreateTrip_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validTripInput(ownerID)

	fx.tripRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Trip")).
		RunAndReturn(func(_ context.Context, trip *entity.Trip) (*entity.Trip, error) {
			assert.Equal(t, ownerID, trip.UserID)
			assert.Equal(t, "Tokyo in autumn", trip.Title)
			assert.Equal(t, entity.TripStatusPlanning, trip.Status)

			created := *trip
			created.ID = uuid.New()

			return &created, nil
		})

	trip, err := fx.service.CreateTrip(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.Equal(t, ownerID, trip.UserID)
}

func TestTripService_CreateTrip_EndBeforeStart(t *testing.T) {
	fx := createTestTripService(t)

	input := validTripInput(uuid.New())
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	trip, err := fx.service.CreateTrip(context.Background(), input)

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTripService_CreateTrip_DefaultsStatusAndTravelers(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	input := validTripInput(uuid.New())
	input.Status = ""
	input.NumberOfTravelers = 0

	fx.tripRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Trip")).
		RunAndReturn(func(_ context.Context, trip *entity.Trip) (*entity.Trip, error) {
			assert.Equal(t, entity.TripStatusPlanning, trip.Status)
			assert.Equal(t, 1, trip.NumberOfTravelers)

			return trip, nil
		})

	_, err := fx.service.CreateTrip(ctx, input)

	require.NoError(t, err)
}

func TestTripService_CreateTrip_UnknownStatus(t *testing.T) {
	fx := createTestTripService(t)

	input := validTripInput(uuid.New())
	input.Status = entity.TripStatus("teleporting")

	trip, err := fx.service.CreateTrip(context.Background(), input)

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTripService_ListTrips(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stored := []*entity.Trip{
		{ID: uuid.New(), UserID: ownerID, Title: "Newer trip"},
		{ID: uuid.New(), UserID: ownerID, Title: "Older trip"},
	}

	fx.tripRepo.EXPECT().FindByOwner(ctx, ownerID).Return(stored, nil)

	trips, err := fx.service.ListTrips(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, stored, trips)
}

func TestTripService_GetTrip_ForeignTripIsNotFound(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	ownerID := uuid.New()

	fx.tripRepo.EXPECT().
		FindByIDAndOwner(ctx, tripID, ownerID).
		Return(nil, repository.ErrTripNotFound)

	trip, err := fx.service.GetTrip(ctx, tripID, ownerID)

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, domainerrors.ErrTripNotFound))
}

func TestTripService_UpdateTrip_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	ownerID := uuid.New()
	input := validTripInput(ownerID)
	input.Title = "Tokyo and Kyoto"

	fx.tripRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Trip")).
		RunAndReturn(func(_ context.Context, trip *entity.Trip) (*entity.Trip, error) {
			assert.Equal(t, tripID, trip.ID)
			assert.Equal(t, ownerID, trip.UserID)
			assert.Equal(t, "Tokyo and Kyoto", trip.Title)

			return trip, nil
		})

	trip, err := fx.service.UpdateTrip(ctx, tripID, input)

	require.NoError(t, err)
	assert.Equal(t, "Tokyo and Kyoto", trip.Title)
}

func TestTripService_UpdateTrip_NotFound(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	input := validTripInput(uuid.New())

	fx.tripRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Trip")).
		Return(nil, repository.ErrTripNotFound)

	trip, err := fx.service.UpdateTrip(ctx, tripID, input)

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, domainerrors.ErrTripNotFound))
}

func TestTripService_DeleteTrip_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	ownerID := uuid.New()

	fx.tripRepo.EXPECT().DeleteByIDAndOwner(ctx, tripID, ownerID).Return(nil)

	require.NoError(t, fx.service.DeleteTrip(ctx, tripID, ownerID))
}

func TestTripService_DeleteTrip_NotFound(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	tripID := uuid.New()
	ownerID := uuid.New()

	fx.tripRepo.EXPECT().
		DeleteByIDAndOwner(ctx, tripID, ownerID).
		Return(repository.ErrTripNotFound)

	err := fx.service.DeleteTrip(ctx, tripID, ownerID)

	assert.True(t, errors.Is(err, domainerrors.ErrTripNotFound))
}
