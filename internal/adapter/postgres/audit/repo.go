// Package audit implements the audit sink using PostgreSQL.
// It provides append-only storage for authorization decisions and
// mutation events.
package audit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

const table = "audit_records"

var columns = []string{"id", "actor_id", "actor_role", "entity_type", "entity_id", "action", "allowed", "reason", "created_at"}

// Repo provides audit record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Record inserts a new audit record. Append-only; records are never
// updated or deleted.
func (r *Repo) Record(ctx context.Context, rec domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.ActorID, rec.ActorRole.String(), rec.EntityType.String(),
			rec.EntityID, rec.Action.String(), rec.Allowed, rec.Reason, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}

	return nil
}

// ListByActor returns audit records for an actor, newest first.
func (r *Repo) ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if limit <= 0 {
		limit = 50
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		var (
			rec        domain.AuditRecord
			actorRole  string
			entityType string
			action     string
		)
		if err := rows.Scan(&rec.ID, &rec.ActorID, &actorRole, &entityType,
			&rec.EntityID, &action, &rec.Allowed, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.ActorRole = domain.Role(actorRole)
		rec.EntityType = domain.EntityType(entityType)
		rec.Action = domain.Action(action)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	return records, nil
}
