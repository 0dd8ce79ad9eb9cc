package models

// ModerationStatus controls whether content is visible to non-privileged
// viewers. Restaurants and reviews carry one; dishes inherit their parent's.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// ParseModerationStatus maps a raw string onto the closed enum.
func ParseModerationStatus(s string) (ModerationStatus, bool) {
	switch ModerationStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ModerationStatus(s), true
	default:
		return "", false
	}
}

func (m ModerationStatus) Valid() bool {
	_, ok := ParseModerationStatus(string(m))
	return ok
}

// InitialStatus is the moderation state newly created content starts in:
// admins publish immediately, everyone else waits for approval.
func InitialStatus(creator Role) ModerationStatus {
	if creator == RoleAdmin {
		return StatusApproved
	}
	return StatusPending
}
