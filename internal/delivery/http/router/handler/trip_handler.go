package handler

import (
	"log/slog"
	"net/http"
	"time"

	"voyage/internal/delivery/http/response"
	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TripHandler holds dependencies for trip handlers.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

type tripRequest struct {
	Title             string            `json:"title" validate:"required,max=255"`
	Description       string            `json:"description"`
	StartDate         time.Time         `json:"startDate" validate:"required"`
	EndDate           time.Time         `json:"endDate" validate:"required"`
	Destinations      []entity.Location `json:"destinations"`
	Budget            entity.Budget     `json:"budget"`
	Activities        []entity.Activity `json:"activities"`
	TravelStyle       []string          `json:"travelStyle"`
	NumberOfTravelers int               `json:"numberOfTravelers" validate:"omitempty,min=1"`
	Status            string            `json:"status"`
	IsPublic          bool              `json:"isPublic"`
}

type tripResponse struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	StartDate         time.Time         `json:"startDate"`
	EndDate           time.Time         `json:"endDate"`
	Destinations      []entity.Location `json:"destinations"`
	Budget            entity.Budget     `json:"budget"`
	Activities        []entity.Activity `json:"activities"`
	TravelStyle       []string          `json:"travelStyle"`
	NumberOfTravelers int               `json:"numberOfTravelers"`
	Status            string            `json:"status"`
	IsPublic          bool              `json:"isPublic"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

func newTripResponse(trip *entity.Trip) tripResponse {
	return tripResponse{
		ID:                trip.ID,
		UserID:            trip.UserID,
		Title:             trip.Title,
		Description:       trip.Description,
		StartDate:         trip.StartDate,
		EndDate:           trip.EndDate,
		Destinations:      trip.Destinations,
		Budget:            trip.Budget,
		Activities:        trip.Activities,
		TravelStyle:       trip.TravelStyle,
		NumberOfTravelers: trip.NumberOfTravelers,
		Status:            trip.Status.String(),
		IsPublic:          trip.IsPublic,
		CreatedAt:         trip.CreatedAt,
		UpdatedAt:         trip.UpdatedAt,
	}
}

func (req *tripRequest) toInput(ownerID uuid.UUID) *usecase.TripInput {
	return &usecase.TripInput{
		OwnerID:           ownerID,
		Title:             req.Title,
		Description:       req.Description,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Destinations:      req.Destinations,
		Budget:            req.Budget,
		Activities:        req.Activities,
		TravelStyle:       req.TravelStyle,
		NumberOfTravelers: req.NumberOfTravelers,
		Status:            entity.TripStatus(req.Status),
		IsPublic:          req.IsPublic,
	}
}

// CreateTrip handles the trip creation request.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req tripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trip, err := h.uc.CreateTrip(c.Request().Context(), req.toInput(ownerID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTripResponse(trip), "Trip created successfully")
}

// ListTrips returns all trips owned by the caller.
func (h *TripHandler) ListTrips(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	trips, err := h.uc.ListTrips(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	tripResponses := make([]tripResponse, 0, len(trips))
	for _, trip := range trips {
		tripResponses = append(tripResponses, newTripResponse(trip))
	}

	return response.Success(c, http.StatusOK, tripResponses, "Trips retrieved successfully")
}

// GetTrip returns a single trip owned by the caller.
func (h *TripHandler) GetTrip(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	tripID, err := parseTripID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	trip, err := h.uc.GetTrip(c.Request().Context(), tripID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTripResponse(trip), "Trip retrieved successfully")
}

// UpdateTrip replaces a trip owned by the caller.
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	tripID, err := parseTripID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req tripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trip, err := h.uc.UpdateTrip(c.Request().Context(), tripID, req.toInput(ownerID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTripResponse(trip), "Trip updated successfully")
}

// DeleteTrip removes a trip owned by the caller.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	tripID, err := parseTripID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteTrip(c.Request().Context(), tripID, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseTripID reads the :id path parameter. A malformed id cannot name any
// trip, so it resolves to not-found rather than a validation error.
func parseTripID(c echo.Context) (uuid.UUID, error) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrTripNotFound
	}

	return tripID, nil
}
