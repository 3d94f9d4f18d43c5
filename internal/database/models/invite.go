package models

import (
	"time"

	"github.com/google/uuid"
)

// OrgInvite invites an email address into an organization.
// At most one pending invite may exist per (org, email).
type OrgInvite struct {
	BaseModel
	OrgID      uuid.UUID    `json:"org_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_invites_pending,where:status = 'pending'"`
	Email      string       `json:"email" gorm:"not null;size:255;index;uniqueIndex:idx_org_invites_pending,where:status = 'pending'"`
	Role       OrgRole      `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	InvitedBy  string       `json:"invited_by" gorm:"not null;size:64"`
	Status     InviteStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt  time.Time    `json:"expires_at" gorm:"not null"`
	AcceptedAt *time.Time   `json:"accepted_at,omitempty"`
}

// TableName returns the table name for OrgInvite
func (OrgInvite) TableName() string {
	return "org_invites"
}

// TeamInvite is the legacy workspace-scoped invite.
// At most one pending invite may exist per (dso, email).
type TeamInvite struct {
	BaseModel
	DsoID      uuid.UUID    `json:"dso_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_invites_pending,where:status = 'pending'"`
	Email      string       `json:"email" gorm:"not null;size:255;index;uniqueIndex:idx_team_invites_pending,where:status = 'pending'"`
	Role       DsoRole      `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
	InvitedBy  string       `json:"invited_by" gorm:"not null;size:64"`
	Status     InviteStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt  time.Time    `json:"expires_at" gorm:"not null"`
	AcceptedAt *time.Time   `json:"accepted_at,omitempty"`
}

// TableName returns the table name for TeamInvite
func (TeamInvite) TableName() string {
	return "team_invites"
}

// IsExpired reports whether the invite is past its expiry at now
func (i *OrgInvite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsExpired reports whether the invite is past its expiry at now
func (i *TeamInvite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
