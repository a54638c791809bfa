package stores

import (
	"github.com/devicepro80/dhstore/internal/models"

	"gorm.io/gorm"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByUsername returns a user if it exists, or ErrNotFound.
	FindByUsername(username string) (*models.User, error)
	// CreateUser persists a new user, or returns ErrDuplicate when the
	// username or email is already taken.
	CreateUser(u *models.User) error
	GetByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
