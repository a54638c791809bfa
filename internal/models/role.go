package models

// Role is the ordered permission level attached to a user. Permission
// checks compare ranks, never the raw strings.
type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Rank returns the position of the role in the STAFF < MANAGER < ADMIN
// order, or -1 for an unknown role.
func (r Role) Rank() int {
	switch r {
	case RoleStaff:
		return 0
	case RoleManager:
		return 1
	case RoleAdmin:
		return 2
	default:
		return -1
	}
}

func (r Role) Valid() bool {
	return r.Rank() >= 0
}

// AtLeast reports whether r satisfies an action that requires the given
// role. Unknown roles never satisfy anything.
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && r.Rank() >= required.Rank()
}
