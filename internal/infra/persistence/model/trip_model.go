package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"voyage/internal/domain/entity"
)

// TripModel mirrors the 'trips' table. Nested documents (destinations,
// budget, activities) live in JSONB columns rather than join tables.
type TripModel struct {
	ID                uuid.UUID                               `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Title             string                                  `gorm:"type:varchar(255);not null"`
	Description       string                                  `gorm:"type:text"`
	StartDate         time.Time                               `gorm:"not null"`
	EndDate           time.Time                               `gorm:"not null"`
	Destinations      datatypes.JSONType[[]entity.Location]   `gorm:"type:jsonb"`
	Budget            datatypes.JSONType[entity.Budget]       `gorm:"type:jsonb"`
	Activities        datatypes.JSONType[[]entity.Activity]   `gorm:"type:jsonb"`
	TravelStyle       datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	NumberOfTravelers int                                     `gorm:"not null;default:1"`
	Status            string                                  `gorm:"type:varchar(20);not null;default:'planning'"`
	IsPublic          bool                                    `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
