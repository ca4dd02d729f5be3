package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an organization that owns users. Tenants are soft-deleted only:
// a non-nil DeletedAt makes the record logically absent from all normal reads.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Subdomain string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the tenant has been soft-deleted.
func (t *Tenant) IsDeleted() bool {
	return t.DeletedAt != nil
}

// TenantView is the outward projection of a Tenant. Timestamps and the
// deletion marker never leave the service boundary.
type TenantView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
}

// View projects the tenant into its outward shape.
func (t *Tenant) View() TenantView {
	return TenantView{ID: t.ID, Name: t.Name, Subdomain: t.Subdomain}
}
