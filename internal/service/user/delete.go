package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// SoftDelete marks an active user deleted. The scope rules mirror Update:
// self for USER, same tenant for TENANT_ADMIN, anyone for ADMIN. A second
// delete reports NotFound because the resolve step no longer sees the row.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.SoftDelete: %w", err)
	}

	if err := s.authorize(ctx, p, authz.UserTarget(current), domain.ActionDelete); err != nil {
		return nil, err
	}

	var deleted *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = s.users.SoftDelete(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.SoftDelete: %w", err)
	}

	s.log.InfoContext(ctx, "user soft-deleted",
		slog.String("user_id", id.String()),
	)

	return deleted, nil
}
