package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/response"
	"github.com/schoolworks/campus-backend/internal/service"
)

// AccountManager is the account-lifecycle surface this handler needs.
// *service.AccountService satisfies it; tests supply doubles.
type AccountManager interface {
	Disable(ctx context.Context, userID int, actor model.Actor) error
	Enable(ctx context.Context, userID int, actor model.Actor) error
	ResetPassword(ctx context.Context, userID int, newPassword string, actor model.Actor) error
}

// AccountStatusHandler handles admin actions on student accounts:
// disable, enable and password reset.
type AccountStatusHandler struct {
	accounts AccountManager
	log      zerolog.Logger
}

// NewAccountStatusHandler creates a new AccountStatusHandler.
func NewAccountStatusHandler(accounts AccountManager, log zerolog.Logger) *AccountStatusHandler {
	return &AccountStatusHandler{accounts: accounts, log: log}
}

// DisableAccount godoc
// POST /api/v1/admin/users/:user_id/disable
// Transitions the student's account to disabled. Repeating the call is a
// rejected no-op, so it appends no duplicate audit entry.
func (h *AccountStatusHandler) DisableAccount(c *gin.Context) {
	h.transition(c, h.accounts.Disable, "Account disabled successfully", response.ErrAlreadyDisabled)
}

// EnableAccount godoc
// POST /api/v1/admin/users/:user_id/enable
// Exact mirror of DisableAccount.
func (h *AccountStatusHandler) EnableAccount(c *gin.Context) {
	h.transition(c, h.accounts.Enable, "Account enabled successfully", response.ErrAlreadyActive)
}

func (h *AccountStatusHandler) transition(
	c *gin.Context,
	action func(ctx context.Context, userID int, actor model.Actor) error,
	successMsg string,
	alreadyCode response.ErrCode,
) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	actor := middleware.GetActor(c)
	if actor.ID == 0 {
		response.Fail(c, http.StatusUnauthorized, response.ErrAdminNotLoggedIn)
		return
	}

	if err := action(c.Request.Context(), userID, actor); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		case errors.Is(err, service.ErrAlreadyDisabled), errors.Is(err, service.ErrAlreadyActive):
			response.Fail(c, http.StatusBadRequest, alreadyCode)
		default:
			h.log.Error().Err(err).Int("user_id", userID).Msg("account status transition failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": successMsg})
}

// ResetPasswordRequest is the payload for an admin password reset.
// Presence and length are checked by hand to keep the documented reply
// order: admin identity, then presence, then minimum length.
type ResetPasswordRequest struct {
	UserID      int    `json:"user_id"`
	NewPassword string `json:"new_password"`
}

// ResetPassword godoc
// POST /api/v1/admin/users/reset-password
// Overwrites a student's password with a freshly hashed one.
func (h *AccountStatusHandler) ResetPassword(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.ID == 0 {
		response.Fail(c, http.StatusUnauthorized, response.ErrAdminNotLoggedIn)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	if req.UserID == 0 || req.NewPassword == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrPasswordFieldsRequired)
		return
	}
	if len(req.NewPassword) < 6 {
		response.Fail(c, http.StatusBadRequest, response.ErrPasswordTooShort)
		return
	}

	if err := h.accounts.ResetPassword(c.Request.Context(), req.UserID, req.NewPassword, actor); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrUserNotFound)
		default:
			h.log.Error().Err(err).Int("user_id", req.UserID).Msg("password reset failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password reset successfully!"})
}
