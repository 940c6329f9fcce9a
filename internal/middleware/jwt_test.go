package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schoolworks/campus-backend/internal/config"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *service.AuthService {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, BcryptCost: 4}
	return service.NewAuthService(cfg, rdb)
}

func protectedRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireAdminJWT(auth), func(c *gin.Context) {
		actor := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"actor_id": actor.ID, "actor_name": actor.Name})
	})
	return r
}

func TestRequireAdminJWTMissingHeader(t *testing.T) {
	r := protectedRouter(newTestAuth(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminJWTInvalidToken(t *testing.T) {
	r := protectedRouter(newTestAuth(t))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminJWTValidToken(t *testing.T) {
	auth := newTestAuth(t)
	r := protectedRouter(auth)

	token, err := auth.GenerateAdminToken(8, "registrar")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"actor_id": 8, "actor_name": "registrar"}`, rec.Body.String())
}

func TestRequireAdminJWTRevokedToken(t *testing.T) {
	auth := newTestAuth(t)
	r := protectedRouter(auth)

	token, err := auth.GenerateAdminToken(8, "registrar")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.NoError(t, auth.RevokeToken(context.Background(), claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
