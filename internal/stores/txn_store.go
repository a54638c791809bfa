package stores

import (
	"github.com/devicepro80/dhstore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TxnStore records inventory movements. Every recorded movement commits
// together with the matching item quantity update in one database
// transaction, so no unattributed stock mutation is ever visible.
type TxnStore interface {
	Record(itemID uint, typ models.TxnType, quantity int, note string) (*models.InventoryTxn, *models.Item, error)
}

// NextQuantity folds one movement into the current quantity.
// IN adds, OUT subtracts, ADJUST replaces. Quantity must be positive for
// every type; OUT (or an ADJUST below zero, which the positivity rule
// already excludes) may not drive stock negative.
func NextQuantity(current int, typ models.TxnType, quantity int) (int, error) {
	if !typ.Valid() {
		return 0, ErrInvalidTxnType
	}
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	switch typ {
	case models.TxnIn:
		return current + quantity, nil
	case models.TxnOut:
		if quantity > current {
			return 0, ErrInsufficientStock
		}
		return current - quantity, nil
	default: // models.TxnAdjust
		return quantity, nil
	}
}

// GormTxnStore implements TxnStore using GORM.
type GormTxnStore struct{ DB *gorm.DB }

func (s *GormTxnStore) Record(itemID uint, typ models.TxnType, quantity int, note string) (*models.InventoryTxn, *models.Item, error) {
	var txn models.InventoryTxn
	var item models.Item

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the item row so concurrent recorders serialize and no
		// update is lost.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, itemID).Error; err != nil {
			return err
		}

		next, err := NextQuantity(item.Quantity, typ, quantity)
		if err != nil {
			return err
		}

		txn = models.InventoryTxn{
			ItemID:   item.ID,
			Type:     typ,
			Quantity: quantity,
			Note:     note,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		if err := tx.Model(&item).Update("quantity", next).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &txn, &item, nil
}
