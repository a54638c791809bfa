package stores

import (
	"strings"

	"github.com/devicepro80/dhstore/internal/models"

	"gorm.io/gorm"
)

// ItemStore abstracts item persistence.
type ItemStore interface {
	// Create persists a new item, or returns ErrDuplicate when the SKU
	// is already taken.
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	// Search returns items whose name or SKU contains q,
	// case-insensitively. An empty q returns everything.
	Search(q string) ([]models.Item, error)
	// LowStock returns exactly the items where quantity <= reorder_level.
	LowStock() ([]models.Item, error)
}

// GormItemStore implements ItemStore using GORM.
type GormItemStore struct{ DB *gorm.DB }

func (s *GormItemStore) Create(item *models.Item) error {
	return s.DB.Create(item).Error
}

func (s *GormItemStore) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormItemStore) Search(q string) ([]models.Item, error) {
	var items []models.Item
	query := s.DB.Preload("Category")
	if q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so q always matches as a
// literal substring.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

func (s *GormItemStore) LowStock() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Preload("Category").
		Where("quantity <= reorder_level").
		Order("quantity asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
