package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModerationStatus(t *testing.T) {
	status, ok := ParseModerationStatus("pending")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, status)

	status, ok = ParseModerationStatus("approved")
	assert.True(t, ok)
	assert.Equal(t, StatusApproved, status)

	status, ok = ParseModerationStatus("rejected")
	assert.True(t, ok)
	assert.Equal(t, StatusRejected, status)

	// Closed enum: nothing outside the three states parses.
	_, ok = ParseModerationStatus("published")
	assert.False(t, ok)
	_, ok = ParseModerationStatus("")
	assert.False(t, ok)
	_, ok = ParseModerationStatus("Approved")
	assert.False(t, ok)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, InitialStatus(RoleAdmin))
	assert.Equal(t, StatusPending, InitialStatus(RoleOwner))
	assert.Equal(t, StatusPending, InitialStatus(RoleUser))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("user")
	assert.True(t, ok)
	assert.Equal(t, RoleUser, role)

	role, ok = ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	role, ok = ParseRole("owner")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	_, ok = ParseRole("superadmin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}
