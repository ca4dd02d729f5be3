// Package shortlink implements the ShortLink repository using PostgreSQL.
//
// Code uniqueness is enforced by a partial unique index on code WHERE
// deleted_at IS NULL; the allocator relies on the resulting
// domain.ErrAlreadyExists from Create to detect collisions.
package shortlink

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

const table = "short_links"

var columns = []string{"id", "code", "target_url", "owner_user_id", "click_count", "created_at", "updated_at", "deleted_at"}

// Repo provides short-link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new short-link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a link by primary key, excluding soft-deleted rows.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", id)
	}

	return l, nil
}

// GetByCode returns an active link by its code.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"code": code, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", uuid.Nil)
	}

	return l, nil
}

// ListByOwner returns the active links owned by a user, newest first.
// Returns an empty slice (not nil) when the user has no links.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_user_id": ownerID, "deleted_at": nil}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list short_links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.ShortLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan short_link: %w", err)
		}
		links = append(links, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list short_links: %w", err)
	}

	return links, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new link and returns the persisted domain.ShortLink.
// A code collision surfaces as domain.ErrAlreadyExists via the partial
// unique index; the caller decides whether that is retryable.
func (r *Repo) Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "code", "target_url", "owner_user_id", "click_count", "created_at", "updated_at").
		Values(l.ID, l.Code, l.TargetURL, l.OwnerUserID, l.ClickCount, l.CreatedAt, l.UpdatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", l.ID)
	}

	return created, nil
}

// UpdateTarget changes the target URL of an active link.
func (r *Repo) UpdateTarget(ctx context.Context, id uuid.UUID, targetURL string) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("target_url", targetURL).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", id)
	}

	return l, nil
}

// SetOwner assigns an owner to an active link.
func (r *Repo) SetOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("owner_user_id", ownerID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", id)
	}

	return l, nil
}

// SoftDelete marks an active link deleted and returns its final state.
// The partial unique index releases the code for reuse.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLink(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "short_link", id)
	}

	return l, nil
}

// IncrementClicks atomically bumps the click counter of an active link.
func (r *Repo) IncrementClicks(ctx context.Context, code string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("click_count", squirrel.Expr("click_count + 1")).
		Where(squirrel.Eq{"code": code, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "short_link", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("short_link %s: %w", code, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type row interface {
	Scan(dest ...any) error
}

func returning() string {
	return "RETURNING id, code, target_url, owner_user_id, click_count, created_at, updated_at, deleted_at"
}

func scanLink(r row) (*domain.ShortLink, error) {
	var l domain.ShortLink
	err := r.Scan(&l.ID, &l.Code, &l.TargetURL, &l.OwnerUserID, &l.ClickCount, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
