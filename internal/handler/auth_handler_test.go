package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/config"
	"github.com/schoolworks/campus-backend/internal/handler"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/repository"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminProvider struct {
	admins map[string]*model.Account
}

func (f *fakeAdminProvider) GetAdminByUsername(_ context.Context, username string) (*model.Account, error) {
	a, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdminProvider) GetAdminByID(_ context.Context, accountID int) (*model.Account, error) {
	for _, a := range f.admins {
		if a.ID == accountID {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, BcryptCost: 4}
	auth := service.NewAuthService(cfg, rdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	admins := &fakeAdminProvider{admins: map[string]*model.Account{
		"root": {
			ID:           1,
			Username:     "root",
			Role:         model.AccountRoleAdmin,
			Status:       model.AccountStatusActive,
			PasswordHash: string(hash),
		},
	}}

	h := handler.NewAuthHandler(auth, admins, zerolog.Nop())
	r := gin.New()
	r.POST("/login", h.AdminLogin)
	r.POST("/logout", middleware.RequireAdminJWT(auth), h.AdminLogout)
	r.GET("/me", middleware.RequireAdminJWT(auth), h.GetAdminProfile)
	return r, auth
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(gin.H{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminLogin(t *testing.T) {
	r, auth := newAuthRouter(t)

	rec := login(t, r, "root", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))

	claims, err := auth.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, 1, claims.AccountID)
	require.Equal(t, "root", claims.Username)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := login(t, r, "root", "wrong")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLoginUnknownUsername(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := login(t, r, "nobody", "correct-horse")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogoutRevokesToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := login(t, r, "root", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	// The revoked token no longer grants access.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	out = httptest.NewRecorder()
	r.ServeHTTP(out, req)
	require.Equal(t, http.StatusUnauthorized, out.Code)
}

func TestGetAdminProfile(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := login(t, r, "root", "correct-horse")
	env := decode(t, rec)
	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	env = decode(t, out)
	var admin map[string]any
	require.NoError(t, json.Unmarshal(env.Data["admin"], &admin))
	require.Equal(t, "root", admin["username"])
}
