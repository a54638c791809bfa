package token

import (
	"errors"
	"time"

	"github.com/devicepro80/dhstore/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried inside an access token.
type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	GenerateAccessToken(user *models.User, ttl time.Duration) (string, error)
	ParseAccessToken(raw string) (*Claims, error)
}

var ErrInvalidToken = errors.New("invalid or expired token")

// JWTService implements TokenService with HMAC-SHA256 signed JWTs.
type JWTService struct {
	Secret []byte
}

func (s *JWTService) GenerateAccessToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *JWTService) ParseAccessToken(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
