package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"imageUrl"`
	SpicyLevel   int             `json:"spicyLevel"` // 0-3
	IsVegetarian bool            `json:"isVegetarian"`
	IsGlutenFree bool            `json:"isGlutenFree"`
	IsPopular    bool            `json:"isPopular"`

	OrderItems []OrderItem `json:"-"`
}
