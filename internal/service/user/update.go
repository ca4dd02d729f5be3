package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Get returns an active user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// Update changes the profile of an active user. USER may update only
// itself, TENANT_ADMIN anyone in its tenant, ADMIN anyone. The target is
// resolved first so probing yields NotFound, not Forbidden. Concurrent
// updates are last-write-wins.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.User, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	if err := s.authorize(ctx, p, authz.UserTarget(current), domain.ActionUpdate); err != nil {
		return nil, err
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.users.Update(ctx, id, in.Email)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", id.String()),
	)

	return updated, nil
}
