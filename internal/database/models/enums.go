package models

import (
	"fmt"
	"strings"
)

// OrgRole is a member's role inside an organization
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
)

// DsoRole is a user's role on a single DSO workspace. It is a separate axis from
// OrgRole; "admin" on one is unrelated to "admin" on the other.
type DsoRole string

const (
	DsoRoleAdmin   DsoRole = "admin"
	DsoRoleManager DsoRole = "manager"
	DsoRoleViewer  DsoRole = "viewer"
)

// InviteStatus is the lifecycle state of an org or team invite
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusCancelled InviteStatus = "cancelled"
)

// ActivityType classifies a logged activity
type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeVisit   ActivityType = "visit"
	ActivityTypeNote    ActivityType = "note"
)

// IsValid checks if the OrgRole is valid
func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may manage members, invites and DSO access
func (r OrgRole) CanManage() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin:
		return true
	case OrgRoleMember:
		return false
	}
	return false
}

// IsValid checks if the DsoRole is valid
func (r DsoRole) IsValid() bool {
	switch r {
	case DsoRoleAdmin, DsoRoleManager, DsoRoleViewer:
		return true
	}
	return false
}

// HasWriteAccess is true for admin and manager; viewer is read-only
func (r DsoRole) HasWriteAccess() bool {
	switch r {
	case DsoRoleAdmin, DsoRoleManager:
		return true
	case DsoRoleViewer:
		return false
	}
	return false
}

// IsValid checks if the InviteStatus is valid
func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the ActivityType is valid
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeCall, ActivityTypeEmail, ActivityTypeMeeting, ActivityTypeVisit, ActivityTypeNote:
		return true
	}
	return false
}

// ParseOrgRole converts a payload string into an OrgRole
func ParseOrgRole(s string) (OrgRole, error) {
	r := OrgRole(strings.TrimSpace(s))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid organization role %q", s)
	}
	return r, nil
}

// ParseDsoRole converts a payload string into a DsoRole
func ParseDsoRole(s string) (DsoRole, error) {
	r := DsoRole(strings.TrimSpace(s))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid workspace role %q", s)
	}
	return r, nil
}

// NormalizeEmail lower-cases and trims an address for invite matching
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
