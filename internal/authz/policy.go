// Package authz implements the authorization policy for tenant and user
// mutations as a pure decision table. It performs no I/O so every cell of
// the role × action × resource matrix can be unit-tested exhaustively.
//
// Evaluation order: ADMIN short-circuits to Allow, then the rule for the
// (resource, role, action) triple is looked up; absence of a matching rule
// is a deny (fail closed).
package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// DenyReason is a machine-checkable cause attached to every deny.
// It is routed to the audit sink only; callers see a generic message.
type DenyReason string

const (
	// DenyNoRule means no allow rule exists for the role/action pair.
	DenyNoRule DenyReason = "NO_MATCHING_RULE"
	// DenyCrossTenant means the rule required the target to be inside the
	// principal's own tenant.
	DenyCrossTenant DenyReason = "CROSS_TENANT"
	// DenyNotSelf means the rule required the target to be the principal's
	// own account.
	DenyNotSelf DenyReason = "NOT_SELF"
	// DenyAnonymous means the action requires an authenticated principal.
	DenyAnonymous DenyReason = "ANONYMOUS"
	// DenyNotOwner means the short link belongs to somebody else. Link
	// ownership is checked by the shortlink service, not the tables here,
	// but the reason shares this vocabulary for the audit trail.
	DenyNotOwner DenyReason = "NOT_OWNER"
)

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Target is a snapshot of the resource under decision, captured before the
// mutation. Nil targets are used for CREATE.
type Target struct {
	Kind     domain.EntityType
	ID       uuid.UUID
	TenantID uuid.UUID
}

// TenantTarget builds a Target from a tenant snapshot. A tenant is scoped
// to itself: its own ID doubles as the tenant scope for the same-tenant rule.
func TenantTarget(t *domain.Tenant) *Target {
	return &Target{Kind: domain.EntityTypeTenant, ID: t.ID, TenantID: t.ID}
}

// UserTarget builds a Target from a user snapshot.
func UserTarget(u *domain.User) *Target {
	return &Target{Kind: domain.EntityTypeUser, ID: u.ID, TenantID: u.TenantID}
}

// scope qualifies an allow rule: matching the role and action is not enough,
// the target must also be inside the rule's scope.
type scope int

const (
	// scopeAny allows the action regardless of target, including anonymous
	// callers (open user registration).
	scopeAny scope = iota
	// scopeSameTenant allows the action iff target.TenantID equals the
	// principal's tenant.
	scopeSameTenant
	// scopeSelf allows the action iff target.ID equals the principal's
	// user ID.
	scopeSelf
)

// anyRole marks a rule that applies to every role, authenticated or not.
const anyRole = domain.Role("*")

// rule is one row of the decision table.
type rule struct {
	role   domain.Role
	action domain.Action
	scope  scope
}

// The decision tables. ADMIN is evaluated before the lookup and never
// appears here. Every (role, action) pair absent from the table is a deny.
var policyTable = map[domain.EntityType][]rule{
	domain.EntityTypeTenant: {
		// Tenant creation is platform-level; no TENANT_ADMIN row for CREATE.
		{role: domain.RoleTenantAdmin, action: domain.ActionUpdate, scope: scopeSameTenant},
		{role: domain.RoleTenantAdmin, action: domain.ActionDelete, scope: scopeSameTenant},
	},
	domain.EntityTypeUser: {
		// Open registration: anyone, including anonymous callers, may create.
		{role: anyRole, action: domain.ActionCreate, scope: scopeAny},
		{role: domain.RoleTenantAdmin, action: domain.ActionUpdate, scope: scopeSameTenant},
		{role: domain.RoleTenantAdmin, action: domain.ActionDelete, scope: scopeSameTenant},
		{role: domain.RoleUser, action: domain.ActionUpdate, scope: scopeSelf},
		{role: domain.RoleUser, action: domain.ActionDelete, scope: scopeSelf},
		// ROLE_CHANGE has no row: it requires platform ADMIN.
	},
}

// Decide evaluates the policy for a principal acting on a resource.
// target is nil for CREATE; kind identifies the resource type in that case.
// For non-nil targets the target's own Kind wins.
func Decide(p domain.Principal, kind domain.EntityType, target *Target, action domain.Action) Decision {
	if target != nil {
		kind = target.Kind
	}

	// Platform ADMIN short-circuit.
	if p.Role == domain.RoleAdmin {
		return Allow
	}

	best := deny(DenyNoRule)
	for _, r := range policyTable[kind] {
		if r.action != action {
			continue
		}
		if r.role != anyRole && r.role != p.Role {
			continue
		}

		d := checkScope(r.scope, p, target)
		if d.Allowed {
			return d
		}
		// Remember the scope failure; it is more informative than NO_MATCHING_RULE.
		best = d
	}

	return best
}

// checkScope verifies the target against the rule's scope.
func checkScope(s scope, p domain.Principal, target *Target) Decision {
	switch s {
	case scopeAny:
		return Allow
	case scopeSameTenant:
		if p.IsAnonymous() {
			return deny(DenyAnonymous)
		}
		if target == nil || target.TenantID != p.TenantID {
			return deny(DenyCrossTenant)
		}
		return Allow
	case scopeSelf:
		if p.IsAnonymous() {
			return deny(DenyAnonymous)
		}
		if target == nil || target.ID != p.UserID {
			return deny(DenyNotSelf)
		}
		return Allow
	}
	return deny(DenyNoRule)
}

// Explain renders the detailed audit reason for a decision. The result is
// for the audit sink only, never for HTTP responses.
func Explain(p domain.Principal, kind domain.EntityType, target *Target, action domain.Action, d Decision) string {
	targetID := "none"
	if target != nil {
		kind = target.Kind
		targetID = target.ID.String()
	}
	if d.Allowed {
		return fmt.Sprintf("allow role=%s action=%s resource=%s target=%s", p.Role, action, kind, targetID)
	}
	return fmt.Sprintf("deny(%s) role=%s action=%s resource=%s target=%s actor=%s",
		d.Reason, p.Role, action, kind, targetID, p.UserID)
}
