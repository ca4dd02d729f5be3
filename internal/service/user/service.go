// Package user implements the user lifecycle operations: open registration,
// profile update, soft deletion and role changes, guarded by the
// authorization policy.
package user

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

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, email *string) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// tenantRepo defines the tenant lookup needed for registration.
type tenantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

// auditRepo defines the audit sink interface needed by this service.
type auditRepo interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes plaintext passwords before storage.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service implements user lifecycle operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	tenants tenantRepo
	audit   auditRepo
	tx      txManager
	hasher  passwordHasher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tenants tenantRepo,
	audit auditRepo,
	tx txManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		tenants: tenants,
		audit:   audit,
		tx:      tx,
		hasher:  hasher,
	}
}

// recordDecision writes a policy decision to the audit sink. Audit is
// best-effort: a sink failure is logged, never surfaced to the caller.
func (s *Service) recordDecision(ctx context.Context, p domain.Principal, target *authz.Target, action domain.Action, d authz.Decision) {
	rec := domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		EntityType: domain.EntityTypeUser,
		Action:     action,
		Allowed:    d.Allowed,
		Reason:     authz.Explain(p, domain.EntityTypeUser, target, action, d),
		CreatedAt:  time.Now().UTC(),
	}
	if target != nil {
		id := target.ID
		rec.EntityID = &id
	}

	if !d.Allowed {
		observe.AuthzDenies.WithLabelValues(string(domain.EntityTypeUser), string(d.Reason)).Inc()
	}

	if err := s.audit.Record(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit record failed", slog.String("error", err.Error()))
	}
}

// authorize runs the policy and records the decision. Denies surface as the
// generic domain.ErrForbidden.
func (s *Service) authorize(ctx context.Context, p domain.Principal, target *authz.Target, action domain.Action) error {
	d := authz.Decide(p, domain.EntityTypeUser, target, action)
	s.recordDecision(ctx, p, target, action, d)
	if !d.Allowed {
		return domain.ErrForbidden
	}
	return nil
}

// principalFromCtx extracts the caller's principal, tolerating anonymous
// callers: open registration is the one user operation anyone may perform.
func principalFromCtx(ctx context.Context) domain.Principal {
	p, _ := ctxutil.PrincipalFromCtx(ctx)
	return p
}

// authenticatedPrincipal extracts the principal and rejects anonymous callers.
func authenticatedPrincipal(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.IsAnonymous() {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
