package models

import (
	"time"

	"github.com/google/uuid"
)

// OrgMember maps a user to an organization with a role.
// One organization per user is the current convention; the unique index only
// prevents duplicate rows for the same (org, user) pair.
type OrgMember struct {
	BaseModel
	OrgID    uuid.UUID `json:"org_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user"`
	UserID   string    `json:"user_id" gorm:"not null;size:64;uniqueIndex:idx_org_members_org_user;index"`
	Role     OrgRole   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

// TableName returns the table name for OrgMember
func (OrgMember) TableName() string {
	return "org_members"
}
