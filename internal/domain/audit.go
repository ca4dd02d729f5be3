package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord captures an authorization decision or mutation event.
// The Reason field holds the detailed internal explanation; it is written
// to the audit sink only and must never reach an HTTP response.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	ActorRole  Role
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     Action
	Allowed    bool
	Reason     string
	CreatedAt  time.Time
}
