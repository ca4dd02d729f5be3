package shortlink

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

var (
	_ linkRepo  = &linkRepoMock{}
	_ auditRepo = &auditRepoMock{}
	_ linkCache = &cacheMock{}
	_ linkRepo  = &memLinkStore{}
)

type linkRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	GetByCodeFunc       func(ctx context.Context, code string) (*domain.ShortLink, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]domain.ShortLink, error)
	CreateFunc          func(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error)
	UpdateTargetFunc    func(ctx context.Context, id uuid.UUID, targetURL string) (*domain.ShortLink, error)
	SetOwnerFunc        func(ctx context.Context, id, ownerID uuid.UUID) (*domain.ShortLink, error)
	SoftDeleteFunc      func(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	IncrementClicksFunc func(ctx context.Context, code string) error

	calls struct {
		GetByCode       []struct{ Code string }
		Create          []struct{ Link *domain.ShortLink }
		IncrementClicks []struct{ Code string }
	}
	lock sync.RWMutex
}

func (mock *linkRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	if mock.GetByIDFunc == nil {
		panic("linkRepoMock.GetByIDFunc: method is nil but linkRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *linkRepoMock) GetByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	if mock.GetByCodeFunc == nil {
		panic("linkRepoMock.GetByCodeFunc: method is nil but linkRepo.GetByCode was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByCode = append(mock.calls.GetByCode, struct{ Code string }{Code: code})
	mock.lock.Unlock()
	return mock.GetByCodeFunc(ctx, code)
}

func (mock *linkRepoMock) GetByCodeCalls() []struct{ Code string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByCode
}

func (mock *linkRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShortLink, error) {
	if mock.ListByOwnerFunc == nil {
		panic("linkRepoMock.ListByOwnerFunc: method is nil but linkRepo.ListByOwner was just called")
	}
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *linkRepoMock) Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error) {
	if mock.CreateFunc == nil {
		panic("linkRepoMock.CreateFunc: method is nil but linkRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Link *domain.ShortLink }{Link: l})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *linkRepoMock) CreateCalls() []struct{ Link *domain.ShortLink } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *linkRepoMock) UpdateTarget(ctx context.Context, id uuid.UUID, targetURL string) (*domain.ShortLink, error) {
	if mock.UpdateTargetFunc == nil {
		panic("linkRepoMock.UpdateTargetFunc: method is nil but linkRepo.UpdateTarget was just called")
	}
	return mock.UpdateTargetFunc(ctx, id, targetURL)
}

func (mock *linkRepoMock) SetOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.ShortLink, error) {
	if mock.SetOwnerFunc == nil {
		panic("linkRepoMock.SetOwnerFunc: method is nil but linkRepo.SetOwner was just called")
	}
	return mock.SetOwnerFunc(ctx, id, ownerID)
}

func (mock *linkRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	if mock.SoftDeleteFunc == nil {
		panic("linkRepoMock.SoftDeleteFunc: method is nil but linkRepo.SoftDelete was just called")
	}
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *linkRepoMock) IncrementClicks(ctx context.Context, code string) error {
	if mock.IncrementClicksFunc == nil {
		panic("linkRepoMock.IncrementClicksFunc: method is nil but linkRepo.IncrementClicks was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementClicks = append(mock.calls.IncrementClicks, struct{ Code string }{Code: code})
	mock.lock.Unlock()
	return mock.IncrementClicksFunc(ctx, code)
}

func (mock *linkRepoMock) IncrementClicksCalls() []struct{ Code string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementClicks
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

type cacheMock struct {
	mu      sync.Mutex
	entries map[string]string

	hits, misses, sets, invalidations int
}

func newCacheMock() *cacheMock {
	return &cacheMock{entries: map[string]string{}}
}

func (c *cacheMock) GetTarget(ctx context.Context, code string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	target, ok := c.entries[code]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return target, ok
}

func (c *cacheMock) SetTarget(ctx context.Context, code, targetURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[code] = targetURL
}

func (c *cacheMock) Invalidate(ctx context.Context, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	delete(c.entries, code)
}

// memLinkStore is an in-memory linkRepo that enforces code uniqueness the
// way the real store does, for exercising concurrent allocations.
type memLinkStore struct {
	mu      sync.Mutex
	byCode  map[string]*domain.ShortLink
	created int
}

func newMemLinkStore() *memLinkStore {
	return &memLinkStore{byCode: map[string]*domain.ShortLink{}}
}

func (m *memLinkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.byCode {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memLinkStore) GetByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memLinkStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ShortLink, 0)
	for _, l := range m.byCode {
		if l.OwnerUserID != nil && *l.OwnerUserID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memLinkStore) Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byCode[l.Code]; taken {
		return nil, domain.ErrAlreadyExists
	}
	cp := *l
	m.byCode[l.Code] = &cp
	m.created++
	out := cp
	return &out, nil
}

func (m *memLinkStore) UpdateTarget(ctx context.Context, id uuid.UUID, targetURL string) (*domain.ShortLink, error) {
	return nil, errors.New("not implemented")
}

func (m *memLinkStore) SetOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.ShortLink, error) {
	return nil, errors.New("not implemented")
}

func (m *memLinkStore) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error) {
	return nil, errors.New("not implemented")
}

func (m *memLinkStore) IncrementClicks(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.byCode[code]
	if !ok {
		return domain.ErrNotFound
	}
	l.ClickCount++
	return nil
}
