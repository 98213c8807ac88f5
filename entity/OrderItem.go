package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// per-unit price captured at order creation; later catalog changes
	// never touch it
	PriceAtTime decimal.Decimal `gorm:"type:decimal(10,2)" json:"priceAtTime"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"` // preloaded for detail display, current row
}
