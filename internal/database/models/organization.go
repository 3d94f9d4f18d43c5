package models

// Organization is the top-level tenant grouping DSOs and members
type Organization struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug      string `json:"slug" gorm:"uniqueIndex;not null;size:120"`
	CreatedBy string `json:"created_by" gorm:"not null;size:64"`

	// Relationships
	Members []OrgMember `json:"members,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
	Dsos    []Dso       `json:"dsos,omitempty" gorm:"foreignKey:OrgID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
