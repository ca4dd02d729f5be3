package rest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/internal/service/shortlink"
	"github.com/snaplinkhq/snaplink-backend/internal/service/tenant"
	"github.com/snaplinkhq/snaplink-backend/internal/service/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustNotBeCalled(t *testing.T, name string) {
	t.Helper()
	t.Fatalf("%s must not be called", name)
}

type tenantServiceMock struct {
	t *testing.T

	CreateFunc         func(ctx context.Context, in tenant.CreateInput) (*domain.Tenant, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySubdomainFunc func(ctx context.Context, subdomain string) (*domain.Tenant, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, in tenant.UpdateInput) (*domain.Tenant, error)
	SoftDeleteFunc     func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

func (m *tenantServiceMock) Create(ctx context.Context, in tenant.CreateInput) (*domain.Tenant, error) {
	if m.CreateFunc == nil {
		mustNotBeCalled(m.t, "Create")
	}
	return m.CreateFunc(ctx, in)
}

func (m *tenantServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if m.GetFunc == nil {
		mustNotBeCalled(m.t, "Get")
	}
	return m.GetFunc(ctx, id)
}

func (m *tenantServiceMock) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	if m.GetBySubdomainFunc == nil {
		mustNotBeCalled(m.t, "GetBySubdomain")
	}
	return m.GetBySubdomainFunc(ctx, subdomain)
}

func (m *tenantServiceMock) Update(ctx context.Context, id uuid.UUID, in tenant.UpdateInput) (*domain.Tenant, error) {
	if m.UpdateFunc == nil {
		mustNotBeCalled(m.t, "Update")
	}
	return m.UpdateFunc(ctx, id, in)
}

func (m *tenantServiceMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if m.SoftDeleteFunc == nil {
		mustNotBeCalled(m.t, "SoftDelete")
	}
	return m.SoftDeleteFunc(ctx, id)
}

type userServiceMock struct {
	t *testing.T

	RegisterFunc   func(ctx context.Context, in user.RegisterInput) (*domain.User, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*domain.User, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ChangeRoleFunc func(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
}

func (m *userServiceMock) Register(ctx context.Context, in user.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc == nil {
		mustNotBeCalled(m.t, "Register")
	}
	return m.RegisterFunc(ctx, in)
}

func (m *userServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetFunc == nil {
		mustNotBeCalled(m.t, "Get")
	}
	return m.GetFunc(ctx, id)
}

func (m *userServiceMock) Update(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*domain.User, error) {
	if m.UpdateFunc == nil {
		mustNotBeCalled(m.t, "Update")
	}
	return m.UpdateFunc(ctx, id, in)
}

func (m *userServiceMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.SoftDeleteFunc == nil {
		mustNotBeCalled(m.t, "SoftDelete")
	}
	return m.SoftDeleteFunc(ctx, id)
}

func (m *userServiceMock) ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	if m.ChangeRoleFunc == nil {
		mustNotBeCalled(m.t, "ChangeRole")
	}
	return m.ChangeRoleFunc(ctx, id, role)
}

type linkServiceMock struct {
	t *testing.T

	CreateFunc       func(ctx context.Context, in shortlink.CreateInput) (*domain.ShortLink, error)
	ResolveFunc      func(ctx context.Context, code string) (string, error)
	InfoFunc         func(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	ListFunc         func(ctx context.Context) ([]domain.ShortLink, error)
	UpdateTargetFunc func(ctx context.Context, id uuid.UUID, in shortlink.UpdateInput) (*domain.ShortLink, error)
	SoftDeleteFunc   func(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	ClaimFunc        func(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
}

func (m *linkServiceMock) Create(ctx context.Context, in shortlink.CreateInput) (*domain.ShortLink, error) {
	if m.CreateFunc == nil {
		mustNotBeCalled(m.t, "Create")
	}
	return m.CreateFunc(ctx, in)
}

func (m *linkServiceMock) Resolve(ctx context.Context, code string) (string, error) {
	if m.ResolveFunc == nil {
		mustNotBeCalled(m.t, "Resolve")
	}
	return m.ResolveFunc(ctx, code)
}

func (m *linkServiceMock) Info(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	if m.InfoFunc == nil {
		mustNotBeCalled(m.t, "Info")
	}
	return m.InfoFunc(ctx, id)
}

func (m *linkServiceMock) List(ctx context.Context) ([]domain.ShortLink, error) {
	if m.ListFunc == nil {
		mustNotBeCalled(m.t, "List")
	}
	return m.ListFunc(ctx)
}

func (m *linkServiceMock) UpdateTarget(ctx context.Context, id uuid.UUID, in shortlink.UpdateInput) (*domain.ShortLink, error) {
	if m.UpdateTargetFunc == nil {
		mustNotBeCalled(m.t, "UpdateTarget")
	}
	return m.UpdateTargetFunc(ctx, id, in)
}

func (m *linkServiceMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	if m.SoftDeleteFunc == nil {
		mustNotBeCalled(m.t, "SoftDelete")
	}
	return m.SoftDeleteFunc(ctx, id)
}

func (m *linkServiceMock) Claim(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	if m.ClaimFunc == nil {
		mustNotBeCalled(m.t, "Claim")
	}
	return m.ClaimFunc(ctx, id)
}
