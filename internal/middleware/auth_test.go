package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devicepro80/dhstore/internal/middleware"
	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tokens token.TokenService, required models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		middleware.RequireAuth(tokens),
		middleware.RequireRole(required),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) },
	)
	return r
}

func issue(t *testing.T, svc *token.JWTService, role models.Role) string {
	t.Helper()
	raw, err := svc.GenerateAccessToken(&models.User{ID: 4, Username: "cashier01", Role: role}, time.Hour)
	require.NoError(t, err)
	return raw
}

func TestRequireAuthMissingHeader(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("s")}
	r := newRouter(svc, models.RoleStaff)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("s")}
	r := newRouter(svc, models.RoleStaff)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", issue(t, svc, models.RoleStaff)) // no Bearer prefix
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("s")}
	r := newRouter(svc, models.RoleStaff)

	raw, err := svc.GenerateAccessToken(&models.User{ID: 4, Role: models.RoleStaff}, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleForbidden(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("s")}
	r := newRouter(svc, models.RoleManager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, svc, models.RoleStaff))
	r.ServeHTTP(w, req)

	// Valid identity but insufficient role: 403, not 401.
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsHigherRank(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("s")}
	r := newRouter(svc, models.RoleManager)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, svc, models.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
