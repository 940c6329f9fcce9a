package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/campus-backend/internal/model"
)

// AuditLogRepository reads the append-only audit trail. Writes happen inside
// the transaction of the mutation they describe, via insertAuditLog.
type AuditLogRepository struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository creates a new AuditLogRepository.
func NewAuditLogRepository(pool *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{pool: pool}
}

// ListPaginated retrieves audit entries newest-first with the total count.
func (r *AuditLogRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.AuditLogEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, actor_id, actor_name, message, created_at
		 FROM audit_logs ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []model.AuditLogEntry
	for rows.Next() {
		var e model.AuditLogEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorName, &e.Message, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// insertAuditLog appends one audit entry using the given querier, which is a
// pgx.Tx when the entry must commit atomically with its mutation.
func insertAuditLog(ctx context.Context, q querier, e *model.AuditLogEntry) error {
	return q.QueryRow(ctx,
		`INSERT INTO audit_logs (actor_id, actor_name, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		e.ActorID, e.ActorName, e.Message,
	).Scan(&e.ID, &e.CreatedAt)
}
