package models

// Role is the closed set of user roles. Authorization decisions match on
// these constants only; unknown strings never grant access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner" // restaurant owner
)

// ParseRole maps a raw string (e.g. a token claim) onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleOwner:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
