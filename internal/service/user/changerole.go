package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/authz"
	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// ChangeRole changes the role of an active user. Only a platform ADMIN may
// do this, and only on its own account; the policy table has no
// ROLE_CHANGE row so every other role is denied outright.
func (s *Service) ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of USER, TENANT_ADMIN, ADMIN")
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.ChangeRole: %w", err)
	}

	target := authz.UserTarget(current)
	d := authz.Decide(p, domain.EntityTypeUser, target, domain.ActionRoleChange)
	if d.Allowed && current.ID != p.UserID {
		// Even an ADMIN may only change its own role.
		d = authz.Decision{Allowed: false, Reason: authz.DenyNotSelf}
	}
	s.recordDecision(ctx, p, target, domain.ActionRoleChange, d)
	if !d.Allowed {
		return nil, domain.ErrForbidden
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.users.UpdateRole(ctx, id, role)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.ChangeRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", id.String()),
		slog.String("new_role", role.String()),
	)

	return updated, nil
}
