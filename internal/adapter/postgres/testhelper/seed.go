package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTenant creates a tenant row and returns the filled domain.Tenant.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tenant := domain.Tenant{
		ID:        uuid.New(),
		Name:      "Test Tenant " + suffix,
		Subdomain: "tenant-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tenants (id, name, subdomain, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tenant.ID, tenant.Name, tenant.Subdomain, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant insert: %v", err)
	}

	return tenant
}

// SeedUser creates a user inside the given tenant with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Role:         role,
		TenantID:     tenantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, tenant_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Role.String(), user.TenantID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedShortLink creates a short link owned by ownerID (pass uuid.Nil for an
// anonymous link).
func SeedShortLink(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.ShortLink {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	link := domain.ShortLink{
		ID:        uuid.New(),
		Code:      uniqueSuffix()[:6],
		TargetURL: "https://example.com/" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ownerID != uuid.Nil {
		link.OwnerUserID = &ownerID
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO short_links (id, code, target_url, owner_user_id, click_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		link.ID, link.Code, link.TargetURL, link.OwnerUserID, link.ClickCount, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShortLink insert: %v", err)
	}

	return link
}
