package stores

import (
	"github.com/devicepro80/dhstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleStore records sales. A sale and its stock decrement commit as one
// database transaction; a sale that would exceed the available stock
// fails outright with ErrInsufficientStock, leaving the item untouched.
type SaleStore interface {
	Record(itemID uint, quantity int, userID uint) (*models.Sale, error)
}

// GormSaleStore implements SaleStore using GORM.
type GormSaleStore struct{ DB *gorm.DB }

func (s *GormSaleStore) Record(itemID uint, quantity int, userID uint) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var sale models.Sale
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, itemID).Error; err != nil {
			return err
		}

		if quantity > item.Quantity {
			return ErrInsufficientStock
		}

		sale = models.Sale{
			Reference: uuid.NewString(),
			ItemID:    item.ID,
			Quantity:  quantity,
			Amount:    float64(quantity) * item.SalePrice,
			UserID:    userID,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		return tx.Model(&item).
			Update("quantity", item.Quantity-quantity).Error
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}
