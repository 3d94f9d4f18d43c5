package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DataTable is a spreadsheet-like table owned by a DSO. Columns is the column
// definition list stored as jsonb; rows and periods live outside this service.
type DataTable struct {
	BaseModel
	DsoID     uuid.UUID       `json:"dso_id" gorm:"type:uuid;not null;uniqueIndex:idx_data_tables_dso_name"`
	Name      string          `json:"name" gorm:"not null;size:200;uniqueIndex:idx_data_tables_dso_name"`
	Columns   json.RawMessage `json:"columns" gorm:"type:jsonb"`
	CreatedBy string          `json:"created_by" gorm:"size:64"`
}

// TableName returns the table name for DataTable
func (DataTable) TableName() string {
	return "data_tables"
}
