package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/response"
)

// AuditLogProvider lists audit entries for compliance review.
// *service.AuditLogService satisfies it; tests supply doubles.
type AuditLogProvider interface {
	List(ctx context.Context, page, perPage int) ([]model.AuditLogEntry, *response.Pagination, error)
}

// AuditLogHandler exposes the append-only audit trail.
type AuditLogHandler struct {
	auditLogs AuditLogProvider
	log       zerolog.Logger
}

// NewAuditLogHandler creates a new AuditLogHandler.
func NewAuditLogHandler(auditLogs AuditLogProvider, log zerolog.Logger) *AuditLogHandler {
	return &AuditLogHandler{auditLogs: auditLogs, log: log}
}

// ListAuditLogs godoc
// GET /api/v1/admin/audit-logs
// Lists audit entries newest-first with pagination.
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	entries, pagination, err := h.auditLogs.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.log.Error().Err(err).Msg("audit log listing failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"audit_logs": entries}, pagination)
}
