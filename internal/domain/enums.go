package domain

// Role represents the authorization level of a user.
// Privilege is scope-qualified: a TenantAdmin has no authority outside
// its own tenant, so Role alone never decides access.
type Role string

const (
	RoleUser        Role = "USER"
	RoleTenantAdmin Role = "TENANT_ADMIN"
	RoleAdmin       Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleTenantAdmin, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Action represents a mutation intent on a resource. Privilege differs per
// intent even on the same resource, so the intent is part of the decision.
type Action string

const (
	ActionCreate     Action = "CREATE"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionRoleChange Action = "ROLE_CHANGE"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionRoleChange:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit records
// and authorization decisions).
type EntityType string

const (
	EntityTypeTenant    EntityType = "TENANT"
	EntityTypeUser      EntityType = "USER"
	EntityTypeShortLink EntityType = "SHORT_LINK"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTenant, EntityTypeUser, EntityTypeShortLink:
		return true
	}
	return false
}
