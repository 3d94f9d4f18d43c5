package models

import (
	"github.com/google/uuid"
)

// Doctor is a contact tracked inside a DSO workspace
type Doctor struct {
	BaseModel
	DsoID     uuid.UUID `json:"dso_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:200"`
	Email     string    `json:"email" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"size:40"`
	Specialty string    `json:"specialty" gorm:"size:100"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedBy string    `json:"created_by" gorm:"size:64"`
}

// TableName returns the table name for Doctor
func (Doctor) TableName() string {
	return "doctors"
}
