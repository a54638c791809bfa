package mocks

import (
	"github.com/devicepro80/dhstore/internal/models"

	"github.com/stretchr/testify/mock"
)

type ItemStore struct{ mock.Mock }

func (m *ItemStore) Create(item *models.Item) error { return m.Called(item).Error(0) }

func (m *ItemStore) GetByID(id uint) (*models.Item, error) {
	a := m.Called(id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Item), a.Error(1)
}

func (m *ItemStore) Search(q string) ([]models.Item, error) {
	a := m.Called(q)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Item), a.Error(1)
}

func (m *ItemStore) LowStock() ([]models.Item, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Item), a.Error(1)
}
