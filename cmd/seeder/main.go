// Command seeder bootstraps a deployment with an initial tenant and one
// account per role. Elevated roles cannot be created through the API, so a
// fresh installation needs this to obtain its first ADMIN.
//
// Flags:
//
//	--tenant     tenant name (default "Demo")
//	--subdomain  tenant subdomain (default "demo")
//	--password   password for all seeded accounts (default "changeme-now")
//	--migrate    apply schema migrations before seeding
//
// Seeding is idempotent: an existing subdomain is reused, existing
// accounts are left untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres"
	tenantrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/tenant"
	userrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/user"
	"github.com/snaplinkhq/snaplink-backend/internal/app"
	"github.com/snaplinkhq/snaplink-backend/internal/auth"
	"github.com/snaplinkhq/snaplink-backend/internal/config"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

func main() {
	tenantFlag := flag.String("tenant", "Demo", "tenant name")
	subdomainFlag := flag.String("subdomain", "demo", "tenant subdomain")
	passwordFlag := flag.String("password", "changeme-now", "password for seeded accounts")
	migrateFlag := flag.Bool("migrate", false, "apply schema migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *migrateFlag {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := &seeder{
		tenants: tenantrepo.New(pool),
		users:   userrepo.New(pool),
		hasher:  auth.NewPasswordHasher(bcrypt.DefaultCost),
		log:     logger,
	}

	if err := s.run(ctx, *tenantFlag, *subdomainFlag, *passwordFlag); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed", slog.String("subdomain", *subdomainFlag))
}

type seeder struct {
	tenants *tenantrepo.Repo
	users   *userrepo.Repo
	hasher  *auth.PasswordHasher
	log     *slog.Logger
}

func (s *seeder) run(ctx context.Context, name, subdomain, password string) error {
	t, err := s.ensureTenant(ctx, name, subdomain)
	if err != nil {
		return err
	}

	accounts := []struct {
		email string
		role  domain.Role
	}{
		{"admin@" + subdomain + ".test", domain.RoleAdmin},
		{"tenant-admin@" + subdomain + ".test", domain.RoleTenantAdmin},
		{"user@" + subdomain + ".test", domain.RoleUser},
	}

	for _, a := range accounts {
		if err := s.ensureUser(ctx, t.ID, a.email, a.role, password); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) ensureTenant(ctx context.Context, name, subdomain string) (*domain.Tenant, error) {
	t, err := s.tenants.GetBySubdomain(ctx, subdomain)
	if err == nil {
		s.log.Info("tenant exists", slog.String("subdomain", subdomain))
		return t, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup tenant: %w", err)
	}

	now := time.Now().UTC()
	t, err = s.tenants.Create(ctx, &domain.Tenant{
		ID:        uuid.New(),
		Name:      name,
		Subdomain: subdomain,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	s.log.Info("tenant created", slog.String("subdomain", subdomain))
	return t, nil
}

func (s *seeder) ensureUser(ctx context.Context, tenantID uuid.UUID, email string, role domain.Role, password string) error {
	_, err := s.users.GetByEmail(ctx, tenantID, email)
	if err == nil {
		s.log.Info("user exists", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup user %s: %w", email, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		TenantID:     tenantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("create user %s: %w", email, err)
	}

	s.log.Info("user created", slog.String("email", email), slog.String("role", string(role)))
	return nil
}
