package mocks

import (
	"time"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/token"

	"github.com/stretchr/testify/mock"
)

type TokenService struct{ mock.Mock }

func (m *TokenService) GenerateAccessToken(user *models.User, ttl time.Duration) (string, error) {
	args := m.Called(user, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) ParseAccessToken(raw string) (*token.Claims, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}
