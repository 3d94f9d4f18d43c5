package models

import (
	"github.com/google/uuid"
)

// Dso is a client workspace. OrgID is nil only for legacy rows created before
// workspaces were attached to organizations.
type Dso struct {
	BaseModel
	Name      string     `json:"name" gorm:"not null;size:200"`
	OrgID     *uuid.UUID `json:"org_id,omitempty" gorm:"type:uuid;index"`
	Archived  bool       `json:"archived" gorm:"not null;default:false"`
	CreatedBy string     `json:"created_by" gorm:"size:64"`

	// Relationships
	AccessGrants []DsoAccessGrant `json:"access_grants,omitempty" gorm:"foreignKey:DsoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Dso
func (Dso) TableName() string {
	return "dsos"
}

// BelongsTo reports whether the DSO is attached to orgID
func (d *Dso) BelongsTo(orgID uuid.UUID) bool {
	return d.OrgID != nil && *d.OrgID == orgID
}
