package services

import (
	"strings"

	"github.com/mauz21/Heat-box/entity"
	"github.com/mauz21/Heat-box/repository"
)

type ReservationService struct {
	Repo *repository.ReservationRepository
}

func NewReservationService(repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: repo}
}

type CreateReservationReq struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:MM
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// Create is a validated insert. No scheduling-conflict detection, no
// capacity limits.
func (s *ReservationService) Create(userID *uint, req *CreateReservationReq) (*entity.Reservation, error) {
	res := &entity.Reservation{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          StatusConfirmed,
		UserID:          userID,
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}
