package domain

import (
	"time"

	"github.com/google/uuid"
)

// CodeLength is the fixed length of every short-link code.
const CodeLength = 6

// ShortLink maps a compact code to a target URL. Codes are unique among
// non-deleted links; OwnerUserID is nil for anonymously created links until
// a user claims them.
type ShortLink struct {
	ID          uuid.UUID
	Code        string
	TargetURL   string
	OwnerUserID *uuid.UUID
	ClickCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the link has been soft-deleted.
func (l *ShortLink) IsDeleted() bool {
	return l.DeletedAt != nil
}

// IsOwnedBy reports whether the link belongs to the given user.
func (l *ShortLink) IsOwnedBy(userID uuid.UUID) bool {
	return l.OwnerUserID != nil && *l.OwnerUserID == userID
}

// ShortLinkView is the outward projection of a ShortLink.
type ShortLinkView struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	TargetURL  string    `json:"targetUrl"`
	ClickCount int64     `json:"clickCount"`
}

// View projects the link into its outward shape.
func (l *ShortLink) View() ShortLinkView {
	return ShortLinkView{ID: l.ID, Code: l.Code, TargetURL: l.TargetURL, ClickCount: l.ClickCount}
}
