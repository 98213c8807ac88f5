package entity

import (
	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
	Status          string `gorm:"default:confirmed" json:"status"`

	// optional link to an authenticated user
	UserID *uint `json:"userId"`
	User   User  `json:"-"`
}
