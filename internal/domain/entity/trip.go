package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents where a trip is in its lifecycle.
type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// String returns the string representation of the TripStatus.
func (s TripStatus) String() string {
	return string(s)
}

// IsValid checks if the TripStatus is a valid value.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusPlanning, TripStatusOngoing, TripStatusCompleted, TripStatusCancelled:
		return true
	default:
		return false
	}
}

// Coordinates is an optional lat/lng pair attached to a location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location names a place a trip visits or an activity happens at.
type Location struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Budget tracks planned and spent money for a trip.
type Budget struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
}

// Activity is a single planned item on a trip's itinerary.
type Activity struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    *Location `json:"location,omitempty"`
	Cost        float64   `json:"cost,omitempty"`
	Duration    int       `json:"duration,omitempty"` // minutes
	Category    string    `json:"category,omitempty"`
	BookingURL  string    `json:"bookingUrl,omitempty"`
}

// Trip is a travel plan owned by exactly one account. All reads and writes
// are scoped to the owner.
type Trip struct {
	ID                uuid.UUID  // The unique identifier for the trip.
	UserID            uuid.UUID  // The owning account's identifier.
	Title             string     // Short name of the trip.
	Description       string     // Optional free-form description.
	StartDate         time.Time  // First day of the trip.
	EndDate           time.Time  // Last day of the trip; never before StartDate.
	Destinations      []Location // Places the trip visits.
	Budget            Budget     // Planned and spent money.
	Activities        []Activity // Itinerary items.
	TravelStyle       []string   // Styles such as "adventure" or "culture".
	NumberOfTravelers int        // How many people travel; at least one.
	Status            TripStatus // Lifecycle state, defaults to planning.
	IsPublic          bool       // Whether the trip is visible outside the owner.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
