package domain

import (
	"github.com/google/uuid"
)

// Principal is the authenticated caller's identity, extracted once per
// request from trusted gateway headers. It is never re-verified here and
// never persisted.
type Principal struct {
	UserID   uuid.UUID
	Role     Role
	TenantID uuid.UUID
	Host     string
}

// IsAnonymous reports whether the request carried no user identity.
func (p Principal) IsAnonymous() bool {
	return p.UserID == uuid.Nil
}
