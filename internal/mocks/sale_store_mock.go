package mocks

import (
	"github.com/devicepro80/dhstore/internal/models"

	"github.com/stretchr/testify/mock"
)

type SaleStore struct{ mock.Mock }

func (m *SaleStore) Record(itemID uint, quantity int, userID uint) (*models.Sale, error) {
	a := m.Called(itemID, quantity, userID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Sale), a.Error(1)
}
