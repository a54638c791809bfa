package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/stores"
	"github.com/devicepro80/dhstore/internal/token"
	"github.com/devicepro80/dhstore/internal/user"
)

// AccessTokenExpiration is the fixed lifetime of an issued token.
const AccessTokenExpiration time.Duration = 12 * time.Hour

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Users        stores.UserStore
	Hasher       user.PasswordHasher
	TokenService token.TokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users stores.UserStore, hasher user.PasswordHasher, tokenService token.TokenService) *AuthHandler {
	return &AuthHandler{
		Users:        users,
		Hasher:       hasher,
		TokenService: tokenService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := h.Hasher.Compare([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	tokenString, err := h.TokenService.GenerateAccessToken(u, AccessTokenExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":       u.ID,
			"username": u.Username,
			"role":     u.Role,
		},
	})
}
