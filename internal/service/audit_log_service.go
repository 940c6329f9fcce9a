package service

import (
	"context"

	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/response"
)

// AuditLogStore reads the append-only audit trail.
type AuditLogStore interface {
	ListPaginated(ctx context.Context, limit, offset int) ([]model.AuditLogEntry, int, error)
}

// AuditLogService exposes the audit trail for compliance review.
type AuditLogService struct {
	auditStore AuditLogStore
}

// NewAuditLogService creates a new AuditLogService.
func NewAuditLogService(auditStore AuditLogStore) *AuditLogService {
	return &AuditLogService{auditStore: auditStore}
}

// List retrieves audit entries newest-first with pagination.
func (s *AuditLogService) List(ctx context.Context, page, perPage int) ([]model.AuditLogEntry, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	limit := perPage
	offset := (page - 1) * perPage

	entries, total, err := s.auditStore.ListPaginated(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	if entries == nil {
		entries = []model.AuditLogEntry{}
	}

	totalPages := (total + perPage - 1) / perPage

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}

	return entries, pagination, nil
}
