package tenant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// Get returns an active tenant by id. Absent and soft-deleted tenants are
// indistinguishable: both yield domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tenant.Get: %w", err)
	}
	return t, nil
}

// GetBySubdomain returns an active tenant by its subdomain.
func (s *Service) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	t, err := s.tenants.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, fmt.Errorf("tenant.GetBySubdomain: %w", err)
	}
	return t, nil
}
