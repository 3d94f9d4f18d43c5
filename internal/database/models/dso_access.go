package models

import (
	"github.com/google/uuid"
)

// DsoAccessGrant is the per-workspace ACL entry for a user
type DsoAccessGrant struct {
	BaseModel
	UserID string    `json:"user_id" gorm:"not null;size:64;uniqueIndex:idx_user_dso_access_user_dso"`
	DsoID  uuid.UUID `json:"dso_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_dso_access_user_dso;index"`
	Role   DsoRole   `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
}

// TableName returns the table name for DsoAccessGrant
func (DsoAccessGrant) TableName() string {
	return "user_dso_access"
}
