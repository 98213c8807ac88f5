package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	// frozen at checkout, stored as one JSON blob
	DeliveryAddress DeliveryAddress `gorm:"type:json" json:"deliveryAddress"`

	// nullable: guest checkout has no identity
	UserID *uint `json:"userId"`
	User   User  `json:"-"`

	// preload only for detail
	OrderItems []OrderItem `json:"-"`
}
