package services

import (
	"errors"
	"fmt"

	"github.com/mauz21/Heat-box/entity"
	"github.com/mauz21/Heat-box/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	Repo *repository.ProductRepository
}

func NewCatalogService(repo *repository.ProductRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// List applies exact-match category / spicy-level filters; nil means no
// filter, both together are conjunctive.
func (s *CatalogService) List(category *string, spicyLevel *int) ([]entity.Product, error) {
	return s.Repo.List(category, spicyLevel)
}

func (s *CatalogService) Get(id uint) (*entity.Product, error) {
	p, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
