package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"
	"github.com/devicepro80/dhstore/internal/user"
)

// DefaultPassword is assigned when an admin creates a user without one.
const DefaultPassword = "Password@123"

type CreateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type UserHandler struct {
	Users  stores.UserStore
	Hasher user.PasswordHasher
}

func NewUserHandler(users stores.UserStore, hasher user.PasswordHasher) *UserHandler {
	return &UserHandler{Users: users, Hasher: hasher}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	password := req.Password
	if password == "" {
		password = DefaultPassword
	}

	if _, err := h.Users.FindByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	hashed, err := h.Hasher.Hash([]byte(password))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error hashing password"})
		return
	}

	u := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := h.Users.CreateUser(u); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
	})
}
