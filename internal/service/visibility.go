package service

import "platehub/internal/models"

// readAccess decides whether the identity may see an entity in the given
// moderation state with the given owner (or author).
//
// Approved content is visible to everyone. Pending/rejected content is
// visible only to an admin or the owner; anonymous viewers get ErrNotFound
// so the entity's existence never leaks, authenticated strangers get
// ErrForbidden.
func readAccess(status models.ModerationStatus, ownerID *uint, identity Identity) error {
	if status == models.StatusApproved {
		return nil
	}
	if !identity.Authenticated {
		return ErrNotFound
	}
	if identity.IsAdmin() || identity.Owns(ownerID) {
		return nil
	}
	return ErrForbidden
}

// writeAccess decides whether the identity may mutate an entity owned by
// ownerID: admins always, the owner, nobody else.
func writeAccess(ownerID *uint, identity Identity) error {
	if !identity.Authenticated {
		return ErrForbidden
	}
	if identity.IsAdmin() || identity.Owns(ownerID) {
		return nil
	}
	return ErrForbidden
}
