//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prize-wheel/internal/handler/middleware"
	"prize-wheel/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T, adminOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(jwt.NewValidator(testSecret))
	router := gin.New()

	group := router.Group("")
	group.Use(auth.RequireAuth())
	if adminOnly {
		group.Use(auth.RequireAdmin())
	}
	group.GET("/protected", func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})

	return router
}

func performGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	validator := jwt.NewValidator(testSecret)

	t.Run("valid bearer token passes", func(t *testing.T) {
		token, err := validator.GenerateToken(uuid.New(), middleware.RoleUser, time.Hour)
		require.NoError(t, err)

		rec := performGet(newAuthRouter(t, false), "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := performGet(newAuthRouter(t, false), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := performGet(newAuthRouter(t, false), "Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := validator.GenerateToken(uuid.New(), middleware.RoleUser, -time.Minute)
		require.NoError(t, err)

		rec := performGet(newAuthRouter(t, false), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewValidator("other-secret")
		token, err := other.GenerateToken(uuid.New(), middleware.RoleUser, time.Hour)
		require.NoError(t, err)

		rec := performGet(newAuthRouter(t, false), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	validator := jwt.NewValidator(testSecret)

	t.Run("admin role passes", func(t *testing.T) {
		token, err := validator.GenerateToken(uuid.New(), middleware.RoleAdmin, time.Hour)
		require.NoError(t, err)

		rec := performGet(newAuthRouter(t, true), "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		token, err := validator.GenerateToken(uuid.New(), middleware.RoleUser, time.Hour)
		require.NoError(t, err)

		rec := performGet(newAuthRouter(t, true), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
