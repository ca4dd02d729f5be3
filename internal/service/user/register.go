package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Register creates a new user inside an existing tenant. Registration is
// open: anonymous callers pass the policy. New accounts always start with
// the USER role; elevated roles are granted afterwards via ChangeRole or
// by the seeder.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	p := principalFromCtx(ctx)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	// The tenant must exist and be active.
	if _, err := s.tenants.GetByID(ctx, in.TenantID); err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	if err := s.authorize(ctx, p, nil, domain.ActionCreate); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		TenantID:     in.TenantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("tenant_id", created.TenantID.String()),
	)

	return created, nil
}
