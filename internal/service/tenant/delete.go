package tenant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// SoftDelete marks an active tenant deleted. Deleting an already deleted
// tenant reports NotFound: the resolve step cannot see the dead row.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	p, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tenant.SoftDelete: %w", err)
	}

	if err := s.authorize(ctx, p, authz.TenantTarget(current), domain.ActionDelete); err != nil {
		return nil, err
	}

	var deleted *domain.Tenant
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = s.tenants.SoftDelete(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tenant.SoftDelete: %w", err)
	}

	s.log.InfoContext(ctx, "tenant soft-deleted",
		slog.String("tenant_id", id.String()),
	)

	return deleted, nil
}
