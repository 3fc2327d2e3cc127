// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level of an account.
type Role string

const (
	// RoleUser is the default role for self-registered accounts.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates the highest administrator level.
	RoleSuperAdmin Role = "super_admin"
)

// rank orders the hierarchy: user < admin < super_admin.
var rank = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrator access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AtLeast reports whether the role sits at or above the given level in the
// hierarchy. Unknown roles rank below everything.
func (r Role) AtLeast(other Role) bool {
	return r.IsValid() && other.IsValid() && rank[r] >= rank[other]
}
