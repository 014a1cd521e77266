// Package authorization models the closed role set and the pure access
// policy for tickets. Role flags coming over the wire are converted to a
// Role exactly once at the boundary; everything past that point reasons
// about the closed enumeration.
package authorization

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleStaff || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsPrivileged reports whether the role grants access to every ticket.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleStaff
}

// ParseRole returns the role named by s, falling back to member for
// anything unrecognized.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}

// RoleFromFlags maps the wire-level is_admin/is_staff flags onto the closed
// role set. Admin wins when both flags are set.
func RoleFromFlags(isAdmin, isStaff bool) Role {
	switch {
	case isAdmin:
		return RoleAdmin
	case isStaff:
		return RoleStaff
	default:
		return RoleMember
	}
}

// Flags is the inverse of RoleFromFlags, used when talking to the
// compatibility HTTP surface.
func (r Role) Flags() (isAdmin, isStaff bool) {
	return r == RoleAdmin, r == RoleStaff
}
