package mocks

import (
	"github.com/devicepro80/dhstore/internal/stores"

	"github.com/stretchr/testify/mock"
)

type AnalyticsStore struct{ mock.Mock }

func (m *AnalyticsStore) Overview() (*stores.Overview, error) {
	a := m.Called()
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*stores.Overview), a.Error(1)
}
