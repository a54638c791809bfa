package mocks

import (
	"github.com/devicepro80/dhstore/internal/models"

	"github.com/stretchr/testify/mock"
)

type TxnStore struct{ mock.Mock }

func (m *TxnStore) Record(itemID uint, typ models.TxnType, quantity int, note string) (*models.InventoryTxn, *models.Item, error) {
	a := m.Called(itemID, typ, quantity, note)
	var txn *models.InventoryTxn
	var item *models.Item
	if a.Get(0) != nil {
		txn = a.Get(0).(*models.InventoryTxn)
	}
	if a.Get(1) != nil {
		item = a.Get(1).(*models.Item)
	}
	return txn, item, a.Error(2)
}
