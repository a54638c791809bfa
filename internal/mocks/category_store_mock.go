package mocks

import (
	"github.com/devicepro80/dhstore/internal/models"

	"github.com/stretchr/testify/mock"
)

type CategoryStore struct{ mock.Mock }

func (m *CategoryStore) List() ([]models.Category, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Category), a.Error(1)
}

func (m *CategoryStore) Create(c *models.Category) error { return m.Called(c).Error(0) }
