package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/repository"
	"github.com/schoolworks/campus-backend/internal/response"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/schoolworks/campus-backend/internal/validator"
)

// AdminProvider looks up admin accounts for authentication.
// *repository.AccountRepository satisfies it; tests supply doubles.
type AdminProvider interface {
	GetAdminByUsername(ctx context.Context, username string) (*model.Account, error)
	GetAdminByID(ctx context.Context, accountID int) (*model.Account, error)
}

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	admins      AdminProvider
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, admins AdminProvider, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, admins: admins, log: log}
}

// AdminLogin godoc
// POST /api/v1/auth/admin/login
// Validates username + password against an admin account and returns a JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.admins.GetAdminByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		h.log.Error().Err(err).Msg("admin lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if admin.Status == model.AccountStatusDisabled {
		response.Fail(c, http.StatusForbidden, response.ErrAccountDisabled)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		h.log.Error().Err(err).Msg("token generation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"account_id": admin.ID,
			"username":   admin.Username,
			"role":       admin.Role,
		},
	})
}

// AdminLogout godoc
// POST /api/v1/auth/admin/logout
// Revokes the current token so it can no longer be used.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.RevokeToken(c.Request.Context(), claims); err != nil {
		h.log.Error().Err(err).Msg("token revocation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetAdminProfile godoc
// GET /api/v1/auth/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.admins.GetAdminByID(c.Request.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("admin lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"account_id": admin.ID,
			"username":   admin.Username,
			"role":       admin.Role,
			"status":     admin.Status,
		},
	})
}
