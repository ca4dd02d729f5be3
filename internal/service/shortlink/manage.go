package shortlink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Info returns a link with its click count. Restricted to the owner and
// platform ADMIN; the target is resolved first so probing foreign ids
// yields NotFound.
func (s *Service) Info(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shortlink.Info: %w", err)
	}

	if p.Role != domain.RoleAdmin && !l.IsOwnedBy(p.UserID) {
		return nil, domain.ErrForbidden
	}

	return l, nil
}

// List returns the caller's links, newest first.
func (s *Service) List(ctx context.Context) ([]domain.ShortLink, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.links.ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("shortlink.List: %w", err)
	}

	return links, nil
}

// UpdateTarget redirects an existing code to a new URL. Owner or ADMIN
// only. The cache entry for the code is dropped so stale targets are not
// served.
func (s *Service) UpdateTarget(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.ShortLink, error) {
	p := principalFromCtx(ctx)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shortlink.UpdateTarget: %w", err)
	}

	if err := s.authorizeOwner(ctx, p, current, domain.ActionUpdate); err != nil {
		return nil, err
	}

	updated, err := s.links.UpdateTarget(ctx, id, in.TargetURL)
	if err != nil {
		return nil, fmt.Errorf("shortlink.UpdateTarget: %w", err)
	}

	s.invalidate(ctx, current.Code)

	s.log.InfoContext(ctx, "short link target updated",
		slog.String("link_id", id.String()),
	)

	return updated, nil
}

// SoftDelete removes a link from service. Owner or ADMIN only. The code
// is released for future allocations and the cache entry dropped.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	p := principalFromCtx(ctx)

	current, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shortlink.SoftDelete: %w", err)
	}

	if err := s.authorizeOwner(ctx, p, current, domain.ActionDelete); err != nil {
		return nil, err
	}

	deleted, err := s.links.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shortlink.SoftDelete: %w", err)
	}

	s.invalidate(ctx, current.Code)

	s.log.InfoContext(ctx, "short link soft-deleted",
		slog.String("link_id", id.String()),
	)

	return deleted, nil
}

// Claim assigns an ownerless link to the caller. Links that already have
// an owner cannot be claimed, not even by their owner.
func (s *Service) Claim(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	p, err := authenticatedPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shortlink.Claim: %w", err)
	}

	if current.OwnerUserID != nil {
		return nil, domain.ErrForbidden
	}

	claimed, err := s.links.SetOwner(ctx, id, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("shortlink.Claim: %w", err)
	}

	s.log.InfoContext(ctx, "short link claimed",
		slog.String("link_id", id.String()),
		slog.String("owner_id", p.UserID.String()),
	)

	return claimed, nil
}
