package mocks

import "github.com/stretchr/testify/mock"

type Notifier struct{ mock.Mock }

func (m *Notifier) Enqueue(itemID uint) { m.Called(itemID) }
