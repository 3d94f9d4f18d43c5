package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a logged touch point with a DSO, optionally tied to a doctor
type Activity struct {
	BaseModel
	DsoID       uuid.UUID    `json:"dso_id" gorm:"type:uuid;not null;index"`
	DoctorID    *uuid.UUID   `json:"doctor_id,omitempty" gorm:"type:uuid;index"`
	Type        ActivityType `json:"type" gorm:"type:varchar(20);not null"`
	Description string       `json:"description" gorm:"type:text"`
	OccurredAt  time.Time    `json:"occurred_at" gorm:"not null;index"`
	CreatedBy   string       `json:"created_by" gorm:"size:64"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
