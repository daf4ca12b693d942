package repository

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditLogRepository appends to the audit trail on its own connection, never
// inside the mutation's transaction: a failed audit write must not be able to
// roll back the primary operation.
type AuditLogRepository struct {
	pool *pgxpool.Pool
}

func NewAuditLogRepository(pool *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{pool: pool}
}

const insertAuditLogSQL = `
INSERT INTO audit_logs (id, actor_name, action, entity_table, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *AuditLogRepository) Log(ctx context.Context, entry commands.AuditEntry) error {
	_, err := r.pool.Exec(ctx, insertAuditLogSQL,
		uuid.New(),
		entry.ActorName,
		entry.Action,
		entry.EntityTable,
		entry.Details,
		pgconv.TimeToPgtype(entry.OccurredAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit log", err)
	}

	return nil
}
