package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

var (
	_ userRepo       = &userRepoMock{}
	_ tenantRepo     = &tenantRepoMock{}
	_ auditRepo      = &auditRepoMock{}
	_ txManager      = &txManagerMock{}
	_ passwordHasher = &hasherMock{}
)

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, email *string) (*domain.User, error)
	UpdateRoleFunc func(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID    []struct{ ID uuid.UUID }
		Create     []struct{ User *domain.User }
		Update     []struct{ ID uuid.UUID }
		UpdateRole []struct {
			ID   uuid.UUID
			Role domain.Role
		}
		SoftDelete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, tenantID, email)
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{User: u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, email *string) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, email)
}

func (mock *userRepoMock) UpdateCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, struct {
		ID   uuid.UUID
		Role domain.Role
	}{ID: id, Role: role})
	mock.lock.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	ID   uuid.UUID
	Role domain.Role
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRole
}

func (mock *userRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.SoftDeleteFunc == nil {
		panic("userRepoMock.SoftDeleteFunc: method is nil but userRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *userRepoMock) SoftDeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftDelete
}

type tenantRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

func (mock *tenantRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if mock.GetByIDFunc == nil {
		panic("tenantRepoMock.GetByIDFunc: method is nil but tenantRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
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

type hasherMock struct {
	HashFunc func(password string) (string, error)
}

func (mock *hasherMock) Hash(password string) (string, error) {
	if mock.HashFunc != nil {
		return mock.HashFunc(password)
	}
	return "hashed:" + password, nil
}
