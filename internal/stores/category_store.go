package stores

import (
	"github.com/devicepro80/dhstore/internal/models"

	"gorm.io/gorm"
)

// CategoryStore abstracts category persistence.
type CategoryStore interface {
	// List returns all categories in alphabetical order.
	List() ([]models.Category, error)
	// Create persists a new category, or returns ErrDuplicate when the
	// name is already taken.
	Create(c *models.Category) error
}

// GormCategoryStore implements CategoryStore using GORM.
type GormCategoryStore struct{ DB *gorm.DB }

func (s *GormCategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormCategoryStore) Create(c *models.Category) error {
	return s.DB.Create(c).Error
}
