package repository

import (
	"github.com/mauz21/Heat-box/entity"

	"gorm.io/gorm"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

// GET /locations
func (r *LocationRepository) List() ([]entity.Location, error) {
	var locations []entity.Location
	err := r.DB.Order("id").Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) Create(l *entity.Location) error {
	return r.DB.Create(l).Error
}
