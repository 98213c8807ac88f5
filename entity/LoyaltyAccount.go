package entity

import (
	"time"

	"gorm.io/gorm"
)

type LoyaltyAccount struct {
	gorm.Model
	Points   int       `gorm:"default:0" json:"points"`
	Tier     string    `gorm:"default:Bronze" json:"tier"` // static text, never derived from points
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	// one account per user; the unique index is the only guard against
	// a concurrent double-create
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`
}
