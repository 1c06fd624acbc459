package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/synapse/synapse-backend/pkg/jwt"
)

func setupAuthRouter(jwtManager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "email": GetEmail(c)})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	mgr := jwt.NewManager("test-secret-key-for-testing-only-32b!", 15*time.Minute, 24*time.Hour)
	router := setupAuthRouter(mgr)

	token, err := mgr.GenerateAccessToken("user-1", "alice@test.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "alice@test.com")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	mgr := jwt.NewManager("test-secret-key-for-testing-only-32b!", 15*time.Minute, 24*time.Hour)
	router := setupAuthRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	mgr := jwt.NewManager("test-secret-key-for-testing-only-32b!", 15*time.Minute, 24*time.Hour)
	router := setupAuthRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	mgr := jwt.NewManager("test-secret-key-for-testing-only-32b!", 15*time.Minute, 24*time.Hour)
	router := setupAuthRouter(mgr)

	refresh, err := mgr.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
