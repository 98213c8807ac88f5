package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Location is static reference data, seeded once at startup.
type Location struct {
	gorm.Model
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Latitude  decimal.Decimal `gorm:"type:decimal(10,6)" json:"latitude"`
	Longitude decimal.Decimal `gorm:"type:decimal(10,6)" json:"longitude"`
	Phone     string          `json:"phone"`
	Hours     string          `json:"hours"`
}
