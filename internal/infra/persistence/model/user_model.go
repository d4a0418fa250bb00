// Package model contains the GORM persistence models mirroring the database
// schema. Models never leak past the repository layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and GoogleID carry unique
// constraints; they are the sole safeguard against concurrent registration
// races.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100);not null"`
	AvatarURL       string    `gorm:"type:varchar(512)"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	Provider        string    `gorm:"type:varchar(50);not null"`
	GoogleID        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Trips []TripModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
