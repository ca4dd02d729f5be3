package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account owned by a tenant. TenantID is immutable after
// creation; tenant-scoped authorization always compares against this stored
// value, never a caller-supplied one.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	TenantID     uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// UserView is the outward projection of a User. The password hash must
// never leave the service boundary.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	TenantID uuid.UUID `json:"tenantId"`
}

// View projects the user into its outward shape.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Email: u.Email, Role: u.Role, TenantID: u.TenantID}
}
