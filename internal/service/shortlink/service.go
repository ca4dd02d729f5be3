// Package shortlink implements short-link creation with unique code
// allocation, redirect resolution with click counting, and the
// owner-scoped link mutations.
package shortlink

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

// linkRepo defines the short-link repository interface needed by this service.
type linkRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	GetByCode(ctx context.Context, code string) (*domain.ShortLink, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShortLink, error)
	Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error)
	UpdateTarget(ctx context.Context, id uuid.UUID, targetURL string) (*domain.ShortLink, error)
	SetOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.ShortLink, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	IncrementClicks(ctx context.Context, code string) error
}

// auditRepo defines the audit sink interface needed by this service.
type auditRepo interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

// linkCache caches resolved code → target URL mappings. Nil-able: the
// service works without a cache.
type linkCache interface {
	GetTarget(ctx context.Context, code string) (string, bool)
	SetTarget(ctx context.Context, code, targetURL string)
	Invalidate(ctx context.Context, code string)
}

// Service implements short-link operations.
type Service struct {
	log         *slog.Logger
	links       linkRepo
	audit       auditRepo
	cache       linkCache
	maxAttempts int
}

// NewService creates a new short-link service instance. cache may be nil.
// maxAttempts bounds the allocation retry loop; values below 1 fall back
// to the default of 5.
func NewService(logger *slog.Logger, links linkRepo, audit auditRepo, cache linkCache, maxAttempts int) *Service {
	if maxAttempts < 1 {
		maxAttempts = 5
	}
	return &Service{
		log:         logger.With("service", "shortlink"),
		links:       links,
		audit:       audit,
		cache:       cache,
		maxAttempts: maxAttempts,
	}
}

// recordDecision writes an ownership decision to the audit sink.
// Best-effort, as everywhere else.
func (s *Service) recordDecision(ctx context.Context, p domain.Principal, linkID uuid.UUID, action domain.Action, allowed bool, reason authz.DenyReason) {
	rec := domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		EntityType: domain.EntityTypeShortLink,
		EntityID:   &linkID,
		Action:     action,
		Allowed:    allowed,
		CreatedAt:  time.Now().UTC(),
	}
	if !allowed {
		rec.Reason = string(reason)
		observe.AuthzDenies.WithLabelValues(string(domain.EntityTypeShortLink), string(reason)).Inc()
	}

	if err := s.audit.Record(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit record failed", slog.String("error", err.Error()))
	}
}

// authorizeOwner allows the mutation for the link's owner and for a
// platform ADMIN. Everyone else gets the generic Forbidden.
func (s *Service) authorizeOwner(ctx context.Context, p domain.Principal, l *domain.ShortLink, action domain.Action) error {
	allowed := p.Role == domain.RoleAdmin || (!p.IsAnonymous() && l.IsOwnedBy(p.UserID))

	reason := authz.DenyNotOwner
	if p.IsAnonymous() {
		reason = authz.DenyAnonymous
	}
	s.recordDecision(ctx, p, l.ID, action, allowed, reason)

	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}

func principalFromCtx(ctx context.Context) domain.Principal {
	p, _ := ctxutil.PrincipalFromCtx(ctx)
	return p
}

func authenticatedPrincipal(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.IsAnonymous() {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}

func (s *Service) invalidate(ctx context.Context, code string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, code)
	}
}
