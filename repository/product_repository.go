package repository

import (
	"github.com/mauz21/Heat-box/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GET /products → optional filters, both exact matches, AND when combined
func (r *ProductRepository) List(category *string, spicyLevel *int) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{})
	if category != nil && *category != "" {
		q = q.Where("category = ?", *category)
	}
	if spicyLevel != nil {
		q = q.Where("spicy_level = ?", *spicyLevel)
	}

	var products []entity.Product
	err := q.Order("id").Find(&products).Error
	return products, err
}

// GET /products/:id
func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// order placement only needs these columns for the price snapshot
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price").First(&p, id).Error
	return p, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}
