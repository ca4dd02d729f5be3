package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Create provisions a new tenant. Only a platform ADMIN passes the policy:
// there is no tenant-level role that may create tenants.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Tenant, error) {
	p, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, p, nil, domain.ActionCreate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Tenant{
		ID:        uuid.New(),
		Name:      in.Name,
		Subdomain: in.Subdomain,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.tenants.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("tenant.Create: %w", err)
	}

	s.log.InfoContext(ctx, "tenant created",
		slog.String("tenant_id", created.ID.String()),
		slog.String("subdomain", created.Subdomain),
	)

	return created, nil
}
