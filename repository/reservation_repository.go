package repository

import (
	"github.com/mauz21/Heat-box/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// POST /reservations → pure insert, no overlap or capacity checks
func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}
