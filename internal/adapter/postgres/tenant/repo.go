// Package tenant implements the Tenant repository using PostgreSQL.
package tenant

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

const table = "tenants"

var columns = []string{"id", "name", "subdomain", "created_at", "updated_at", "deleted_at"}

// Repo provides tenant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tenant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tenant by primary key. Soft-deleted tenants are treated
// as absent: the caller cannot tell a deleted tenant from a missing one.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTenant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", id)
	}

	return t, nil
}

// GetBySubdomain returns an active tenant by its unique subdomain.
func (r *Repo) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"subdomain": subdomain, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTenant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", uuid.Nil)
	}

	return t, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new tenant and returns the persisted domain.Tenant.
// Name uniqueness is enforced by a DB constraint (→ domain.ErrAlreadyExists).
func (r *Repo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "subdomain", "created_at", "updated_at").
		Values(t.ID, t.Name, t.Subdomain, t.CreatedAt, t.UpdatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanTenant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", t.ID)
	}

	return created, nil
}

// Update applies non-nil fields to an active tenant and returns the new
// state. Returns domain.ErrNotFound for absent or soft-deleted tenants.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, subdomain *string) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning())
	if name != nil {
		update = update.Set("name", *name)
	}
	if subdomain != nil {
		update = update.Set("subdomain", *subdomain)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTenant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", id)
	}

	return t, nil
}

// SoftDelete marks an active tenant deleted and returns its final state.
// A second delete of the same id returns domain.ErrNotFound because the
// deleted_at IS NULL guard no longer matches.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
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

	t, err := scanTenant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tenant", id)
	}

	return t, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type row interface {
	Scan(dest ...any) error
}

func returning() string {
	return "RETURNING id, name, subdomain, created_at, updated_at, deleted_at"
}

func scanTenant(r row) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.Scan(&t.ID, &t.Name, &t.Subdomain, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
