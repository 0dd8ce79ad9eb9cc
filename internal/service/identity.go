package service

import "platehub/internal/models"

// Identity is the caller of an operation, resolved once per request from the
// bearer token. It is always passed explicitly: no service reads role or user
// id from ambient request state.
type Identity struct {
	Authenticated bool
	UserID        uint
	Role          models.Role
}

// Anonymous is the identity of an unauthenticated request.
func Anonymous() Identity {
	return Identity{}
}

// NewIdentity builds an authenticated identity.
func NewIdentity(userID uint, role models.Role) Identity {
	return Identity{Authenticated: true, UserID: userID, Role: role}
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.Role == models.RoleAdmin
}

// Owns reports whether the identity is the (non-nil) owner reference.
func (i Identity) Owns(ownerID *uint) bool {
	return i.Authenticated && ownerID != nil && *ownerID == i.UserID
}

// IsUser reports whether the identity is exactly the given user.
func (i Identity) IsUser(userID uint) bool {
	return i.Authenticated && i.UserID == userID
}
