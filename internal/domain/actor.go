package domain

import "github.com/google/uuid"

// Role is the workflow capability level of an actor.
// Roles are ordered: Admin ⊇ Manager ⊇ Member.
type Role string

const (
	RoleMember  Role = "member"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// rank returns the position of r in the hierarchy; unknown roles rank below Member.
func (r Role) rank() int {
	switch r {
	case RoleMember:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// AtLeast reports whether r grants every capability of required.
func (r Role) AtLeast(required Role) bool {
	return r.rank() >= required.rank()
}

// Actor is the user issuing a command. It is owned by the identity provider;
// the workflow only reads its id, name and role.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role Role
}
