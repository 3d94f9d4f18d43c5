package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/logger"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DsoService handles business logic for DSO workspaces
type DsoService struct {
	dsos      repository.DsoRepositoryInterface
	access    repository.DsoAccessRepositoryInterface
	validator *validator.Validate
}

// NewDsoService creates a new DSO service
func NewDsoService(dsos repository.DsoRepositoryInterface, access repository.DsoAccessRepositoryInterface, validator *validator.Validate) *DsoService {
	return &DsoService{
		dsos:      dsos,
		access:    access,
		validator: validator,
	}
}

// CreateDsoRequest represents the request to create a workspace
type CreateDsoRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Bright Smiles DSO"`
}

// UpdateDsoRequest represents the request to rename a workspace
type UpdateDsoRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Bright Smiles Dental Group"`
}

// DsoResponse represents a workspace as seen by a user
type DsoResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	OrgID     *uuid.UUID     `json:"org_id,omitempty"`
	Archived  bool           `json:"archived"`
	Role      models.DsoRole `json:"role,omitempty"`
	CreatedBy string         `json:"created_by"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// Create creates a workspace in orgID and grants its creator admin. The
// workspace row is removed again if the grant cannot be written.
func (s *DsoService) Create(ctx context.Context, orgID uuid.UUID, userID string, req *CreateDsoRequest) (*DsoResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dso := &models.Dso{
		Name:      req.Name,
		OrgID:     &orgID,
		CreatedBy: userID,
	}
	if err := s.dsos.Create(dso); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	grant := &models.DsoAccessGrant{UserID: userID, DsoID: dso.ID, Role: models.DsoRoleAdmin}
	if err := s.access.Create(grant); err != nil {
		if delErr := s.dsos.Delete(dso.ID); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("dso_id", dso.ID).Error("Failed to roll back workspace")
		}
		return nil, fmt.Errorf("failed to grant workspace admin: %w", err)
	}

	return toDsoResponse(dso, models.DsoRoleAdmin), nil
}

// ListForUser lists the workspaces of orgID the user holds a grant on
func (s *DsoService) ListForUser(orgID uuid.UUID, userID string, includeArchived bool) ([]DsoResponse, error) {
	dsos, err := s.dsos.ListForUser(orgID, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	responses := make([]DsoResponse, len(dsos))
	for i := range dsos {
		responses[i] = *toDsoResponse(&dsos[i], "")
	}
	return responses, nil
}

// Get returns a workspace already loaded by the access guard
func (s *DsoService) Get(dso *models.Dso, role models.DsoRole) *DsoResponse {
	return toDsoResponse(dso, role)
}

// Update renames a workspace
func (s *DsoService) Update(id uuid.UUID, req *UpdateDsoRequest) (*DsoResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dso, err := s.dsos.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDsoNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	dso.Name = req.Name
	if err := s.dsos.Update(dso); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	return toDsoResponse(dso, ""), nil
}

// SetArchived archives or restores a workspace. Only workspace admins may do this.
func (s *DsoService) SetArchived(id uuid.UUID, role models.DsoRole, archived bool) error {
	if role != models.DsoRoleAdmin {
		return apperrors.ErrWorkspaceAdminNeeded
	}
	if err := s.dsos.SetArchived(id, archived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDsoNotFound
		}
		return fmt.Errorf("failed to archive workspace: %w", err)
	}
	return nil
}

func toDsoResponse(dso *models.Dso, role models.DsoRole) *DsoResponse {
	return &DsoResponse{
		ID:        dso.ID,
		Name:      dso.Name,
		OrgID:     dso.OrgID,
		Archived:  dso.Archived,
		Role:      role,
		CreatedBy: dso.CreatedBy,
		CreatedAt: dso.CreatedAt.Format(time.RFC3339),
		UpdatedAt: dso.UpdatedAt.Format(time.RFC3339),
	}
}
