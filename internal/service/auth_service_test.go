package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/schoolworks/campus-backend/internal/config"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
	return service.NewAuthService(cfg, rdb)
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newAuthService(t)

	hash, err := svc.HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	require.NoError(t, svc.CheckPassword(hash, "hunter22"))
	require.ErrorIs(t, svc.CheckPassword(hash, "wrong"), service.ErrInvalidCredentials)
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.GenerateAdminToken(5, "registrar")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, 5, claims.AccountID)
	require.Equal(t, "registrar", claims.Username)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.GenerateAdminToken(5, "registrar")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token+"x")
	require.Error(t, err)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.GenerateAdminToken(5, "registrar")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), claims))

	_, err = svc.ValidateToken(context.Background(), token)
	require.ErrorIs(t, err, service.ErrTokenRevoked)
}
