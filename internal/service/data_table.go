package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DataTableService manages the data tables of a workspace
type DataTableService struct {
	repo      repository.DataTableRepositoryInterface
	validator *validator.Validate
}

// NewDataTableService creates a new data table service
func NewDataTableService(repo repository.DataTableRepositoryInterface, validator *validator.Validate) *DataTableService {
	return &DataTableService{repo: repo, validator: validator}
}

// DataTableColumn describes one column of a data table
type DataTableColumn struct {
	Key  string `json:"key" validate:"required,max=100"`
	Name string `json:"name" validate:"required,max=200"`
	Type string `json:"type" validate:"required,oneof=text number currency percent date"`
}

// CreateDataTableRequest represents the request to create a data table
type CreateDataTableRequest struct {
	auth.FallbackBody
	Name    string            `json:"name" validate:"required,min=1,max=200" example:"Monthly production"`
	Columns []DataTableColumn `json:"columns" validate:"dive"`
}

// Create adds a data table to dsoID. Names are unique per workspace.
func (s *DataTableService) Create(dsoID uuid.UUID, userID string, req *CreateDataTableRequest) (*models.DataTable, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	seen := make(map[string]bool, len(req.Columns))
	for _, col := range req.Columns {
		if seen[col.Key] {
			return nil, apperrors.NewValidationError("columns", fmt.Sprintf("duplicate column key %q", col.Key))
		}
		seen[col.Key] = true
	}

	columns := req.Columns
	if columns == nil {
		columns = []DataTableColumn{}
	}
	raw, err := json.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode columns: %w", err)
	}

	table := &models.DataTable{
		DsoID:     dsoID,
		Name:      strings.TrimSpace(req.Name),
		Columns:   raw,
		CreatedBy: userID,
	}
	if err := s.repo.Create(table); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrDataTableExists
		}
		return nil, fmt.Errorf("failed to create data table: %w", err)
	}
	return table, nil
}

// List returns the data tables of dsoID
func (s *DataTableService) List(dsoID uuid.UUID) ([]models.DataTable, error) {
	tables, err := s.repo.ListByDso(dsoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list data tables: %w", err)
	}
	return tables, nil
}
