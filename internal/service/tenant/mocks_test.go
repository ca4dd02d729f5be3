package tenant

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

var (
	_ tenantRepo = &tenantRepoMock{}
	_ auditRepo  = &auditRepoMock{}
	_ txManager  = &txManagerMock{}
)

type tenantRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySubdomainFunc func(ctx context.Context, subdomain string) (*domain.Tenant, error)
	CreateFunc         func(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, name, subdomain *string) (*domain.Tenant, error)
	SoftDeleteFunc     func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)

	calls struct {
		GetByID        []struct{ ID uuid.UUID }
		GetBySubdomain []struct{ Subdomain string }
		Create         []struct{ Tenant *domain.Tenant }
		Update         []struct{ ID uuid.UUID }
		SoftDelete     []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *tenantRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if mock.GetByIDFunc == nil {
		panic("tenantRepoMock.GetByIDFunc: method is nil but tenantRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tenantRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *tenantRepoMock) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	if mock.GetBySubdomainFunc == nil {
		panic("tenantRepoMock.GetBySubdomainFunc: method is nil but tenantRepo.GetBySubdomain was just called")
	}
	mock.lock.Lock()
	mock.calls.GetBySubdomain = append(mock.calls.GetBySubdomain, struct{ Subdomain string }{Subdomain: subdomain})
	mock.lock.Unlock()
	return mock.GetBySubdomainFunc(ctx, subdomain)
}

func (mock *tenantRepoMock) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if mock.CreateFunc == nil {
		panic("tenantRepoMock.CreateFunc: method is nil but tenantRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Tenant *domain.Tenant }{Tenant: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tenantRepoMock) CreateCalls() []struct{ Tenant *domain.Tenant } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tenantRepoMock) Update(ctx context.Context, id uuid.UUID, name, subdomain *string) (*domain.Tenant, error) {
	if mock.UpdateFunc == nil {
		panic("tenantRepoMock.UpdateFunc: method is nil but tenantRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, name, subdomain)
}

func (mock *tenantRepoMock) UpdateCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *tenantRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if mock.SoftDeleteFunc == nil {
		panic("tenantRepoMock.SoftDeleteFunc: method is nil but tenantRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *tenantRepoMock) SoftDeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftDelete
}

type auditRepoMock struct {
	RecordFunc func(ctx context.Context, rec domain.AuditRecord) error

	calls struct {
		Record []struct{ Rec domain.AuditRecord }
	}
	lock sync.RWMutex
}

func (mock *auditRepoMock) Record(ctx context.Context, rec domain.AuditRecord) error {
	if mock.RecordFunc == nil {
		panic("auditRepoMock.RecordFunc: method is nil but auditRepo.Record was just called")
	}
	mock.lock.Lock()
	mock.calls.Record = append(mock.calls.Record, struct{ Rec domain.AuditRecord }{Rec: rec})
	mock.lock.Unlock()
	return mock.RecordFunc(ctx, rec)
}

func (mock *auditRepoMock) RecordCalls() []struct{ Rec domain.AuditRecord } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Record
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunInTx defaults to executing fn directly when no func is provided.
func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
