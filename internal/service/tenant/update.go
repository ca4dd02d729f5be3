package tenant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Update changes the name and/or subdomain of an active tenant.
// The target is resolved before the policy runs, so a caller probing a
// foreign tenant id learns only NotFound, never Forbidden. Concurrent
// updates are last-write-wins.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Tenant, error) {
	p, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tenant.Update: %w", err)
	}

	if err := s.authorize(ctx, p, authz.TenantTarget(current), domain.ActionUpdate); err != nil {
		return nil, err
	}

	var updated *domain.Tenant
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.tenants.Update(ctx, id, in.Name, in.Subdomain)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tenant.Update: %w", err)
	}

	s.log.InfoContext(ctx, "tenant updated",
		slog.String("tenant_id", id.String()),
	)

	return updated, nil
}
