// Package tenant implements the tenant lifecycle operations: creation,
// update and soft deletion, guarded by the authorization policy.
package tenant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/internal/observe"
	"github.com/snaplinkhq/snaplink-backend/pkg/ctxutil"
)

// tenantRepo defines the tenant repository interface needed by this service.
type tenantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	Update(ctx context.Context, id uuid.UUID, name, subdomain *string) (*domain.Tenant, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

// auditRepo defines the audit sink interface needed by this service.
type auditRepo interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements tenant lifecycle operations.
type Service struct {
	log     *slog.Logger
	tenants tenantRepo
	audit   auditRepo
	tx      txManager
}

// NewService creates a new tenant service instance.
func NewService(logger *slog.Logger, tenants tenantRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "tenant"),
		tenants: tenants,
		audit:   audit,
		tx:      tx,
	}
}

// authorize runs the policy for the caller and writes the decision to the
// audit sink. The caller receives only the generic domain.ErrForbidden; the
// detailed deny reason goes to the audit record.
func (s *Service) authorize(ctx context.Context, p domain.Principal, target *authz.Target, action domain.Action) error {
	d := authz.Decide(p, domain.EntityTypeTenant, target, action)

	rec := domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		EntityType: domain.EntityTypeTenant,
		Action:     action,
		Allowed:    d.Allowed,
		Reason:     authz.Explain(p, domain.EntityTypeTenant, target, action, d),
		CreatedAt:  time.Now().UTC(),
	}
	if target != nil {
		id := target.ID
		rec.EntityID = &id
	}

	// Audit is best-effort: a sink failure must not mask the decision.
	if err := s.audit.Record(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit record failed", slog.String("error", err.Error()))
	}

	if !d.Allowed {
		observe.AuthzDenies.WithLabelValues(string(domain.EntityTypeTenant), string(d.Reason)).Inc()
		return domain.ErrForbidden
	}
	return nil
}

// principalFromCtx extracts the caller's principal. Tenant mutations never
// allow anonymous callers.
func principalFromCtx(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.IsAnonymous() {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
