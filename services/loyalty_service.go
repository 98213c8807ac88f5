package services

import (
	"errors"

	"github.com/mauz21/Heat-box/entity"
	"github.com/mauz21/Heat-box/repository"

	"gorm.io/gorm"
)

const defaultTier = "Bronze"

type LoyaltyService struct {
	Repo *repository.LoyaltyRepository
}

func NewLoyaltyService(repo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

// GetOrCreate returns the caller's account, creating a zero-balance one on
// first read. A lost create race (unique index on user_id) falls back to
// re-reading the winner's row.
func (s *LoyaltyService) GetOrCreate(userID uint) (*entity.LoyaltyAccount, error) {
	acc, err := s.Repo.FindByUser(userID)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &entity.LoyaltyAccount{UserID: userID, Points: 0, Tier: defaultTier}
	if createErr := s.Repo.Create(fresh); createErr != nil {
		if acc, err = s.Repo.FindByUser(userID); err == nil {
			return acc, nil
		}
		return nil, createErr
	}
	return fresh, nil
}

type AddPointsReq struct {
	Points int `json:"points" binding:"required"`
}

// AddPoints increments the stored balance in the database. Tier is static
// text and never recomputed here.
func (s *LoyaltyService) AddPoints(userID uint, delta int) (*entity.LoyaltyAccount, error) {
	if _, err := s.GetOrCreate(userID); err != nil {
		return nil, err
	}
	if err := s.Repo.AddPoints(userID, delta); err != nil {
		return nil, err
	}
	return s.Repo.FindByUser(userID)
}
