package middleware

import (
	"net/http"
	"strings"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/token"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// RequireAuth verifies the Bearer token and attaches its claims to the
// request context. Missing, malformed, or expired tokens abort with 401.
func RequireAuth(tokens token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")
		if raw == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format, must be 'Bearer <token>'"})
			return
		}

		claims, err := tokens.ParseAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// SetClaims attaches verified claims to the request context. Exposed so
// handler tests can authenticate a test context directly.
func SetClaims(c *gin.Context, claims *token.Claims) {
	c.Set(claimsKey, claims)
}

// RequireRole aborts with 403 when the authenticated user's role ranks
// below the required one. Must run after RequireAuth; a request that
// somehow reaches it unauthenticated gets 401, keeping the two failure
// kinds distinct.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !claims.Role.AtLeast(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the claims RequireAuth stored on the context.
func CurrentClaims(c *gin.Context) (*token.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
