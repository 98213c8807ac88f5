package repository

import (
	"github.com/mauz21/Heat-box/entity"

	"gorm.io/gorm"
)

type LoyaltyRepository struct {
	DB *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{DB: db}
}

func (r *LoyaltyRepository) FindByUser(userID uint) (*entity.LoyaltyAccount, error) {
	var acc entity.LoyaltyAccount
	if err := r.DB.Where("user_id = ?", userID).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *LoyaltyRepository) Create(acc *entity.LoyaltyAccount) error {
	return r.DB.Create(acc).Error
}

// AddPoints runs as a single UPDATE so concurrent increments cannot lose
// points.
func (r *LoyaltyRepository) AddPoints(userID uint, delta int) error {
	return r.DB.Model(&entity.LoyaltyAccount{}).
		Where("user_id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}
