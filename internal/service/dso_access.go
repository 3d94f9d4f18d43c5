package service

import (
	"errors"
	"fmt"

	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DsoAccessService manages the org-scoped matrix of workspace grants
type DsoAccessService struct {
	dsos      repository.DsoRepositoryInterface
	members   repository.OrgMemberRepositoryInterface
	access    repository.DsoAccessRepositoryInterface
	validator *validator.Validate
	recorder  Recorder
}

// NewDsoAccessService creates a new DSO access service
func NewDsoAccessService(
	dsos repository.DsoRepositoryInterface,
	members repository.OrgMemberRepositoryInterface,
	access repository.DsoAccessRepositoryInterface,
	validator *validator.Validate,
	recorder Recorder,
) *DsoAccessService {
	return &DsoAccessService{
		dsos:      dsos,
		members:   members,
		access:    access,
		validator: validator,
		recorder:  recorderOrNoop(recorder),
	}
}

// DsoAccessRequest identifies a grant and, for grant and update, its role
type DsoAccessRequest struct {
	UserID string    `json:"user_id" validate:"required,max=64" example:"user_123"`
	DsoID  uuid.UUID `json:"dso_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role   string    `json:"role" validate:"required" example:"manager"`
}

// DsoAccessResponse represents one grant
type DsoAccessResponse struct {
	ID     uuid.UUID      `json:"id"`
	UserID string         `json:"user_id"`
	DsoID  uuid.UUID      `json:"dso_id"`
	Role   models.DsoRole `json:"role"`
}

// List returns every grant on every workspace of the organization
func (s *DsoAccessService) List(orgID uuid.UUID) ([]DsoAccessResponse, error) {
	grants, err := s.access.ListByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace access: %w", err)
	}
	responses := make([]DsoAccessResponse, len(grants))
	for i := range grants {
		responses[i] = *toDsoAccessResponse(&grants[i])
	}
	return responses, nil
}

// Grant gives a member of orgID a role on one of orgID's workspaces. The
// workspace and membership checks both run before anything is written.
func (s *DsoAccessService) Grant(orgID uuid.UUID, req *DsoAccessRequest) (*DsoAccessResponse, error) {
	role, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDsoInOrg(orgID, req.DsoID); err != nil {
		return nil, err
	}

	membership, err := s.members.CheckOrgMembership(req.UserID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !membership.IsMember {
		s.recorder.RecordInvariantRejection("cross_org_user")
		return nil, apperrors.ErrUserNotInOrganization
	}

	grant := &models.DsoAccessGrant{UserID: req.UserID, DsoID: req.DsoID, Role: role}
	if err := s.access.Create(grant); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAccessGrantExists
		}
		return nil, fmt.Errorf("failed to grant workspace access: %w", err)
	}
	return toDsoAccessResponse(grant), nil
}

// UpdateRole changes a grant's role; the last admin of a workspace cannot be demoted
func (s *DsoAccessService) UpdateRole(orgID uuid.UUID, req *DsoAccessRequest) (*DsoAccessResponse, error) {
	role, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDsoInOrg(orgID, req.DsoID); err != nil {
		return nil, err
	}

	if err := s.access.UpdateRoleGuarded(req.UserID, req.DsoID, role); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastAdmin):
			s.recorder.RecordInvariantRejection("last_admin")
			return nil, apperrors.ErrLastAdminDemotion
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrAccessGrantNotFound
		}
		return nil, fmt.Errorf("failed to update workspace access: %w", err)
	}
	return &DsoAccessResponse{UserID: req.UserID, DsoID: req.DsoID, Role: role}, nil
}

// Revoke removes a grant; the last admin of a workspace cannot be removed
func (s *DsoAccessService) Revoke(orgID uuid.UUID, userID string, dsoID uuid.UUID) error {
	if userID == "" {
		return apperrors.NewValidationError("user_id", "is required")
	}
	if err := s.checkDsoInOrg(orgID, dsoID); err != nil {
		return err
	}

	if err := s.access.DeleteGuarded(userID, dsoID); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastAdmin):
			s.recorder.RecordInvariantRejection("last_admin")
			return apperrors.ErrLastAdminRemoval
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrAccessGrantNotFound
		}
		return fmt.Errorf("failed to revoke workspace access: %w", err)
	}
	return nil
}

func (s *DsoAccessService) validate(req *DsoAccessRequest) (models.DsoRole, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	role, err := models.ParseDsoRole(req.Role)
	if err != nil {
		return "", apperrors.ErrInvalidDsoRole
	}
	return role, nil
}

func (s *DsoAccessService) checkDsoInOrg(orgID, dsoID uuid.UUID) error {
	dso, err := s.dsos.GetByID(dsoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDsoNotFound
		}
		return fmt.Errorf("failed to get workspace: %w", err)
	}
	if !dso.BelongsTo(orgID) {
		s.recorder.RecordInvariantRejection("cross_org_dso")
		return apperrors.ErrDsoNotInOrganization
	}
	return nil
}

func toDsoAccessResponse(g *models.DsoAccessGrant) *DsoAccessResponse {
	return &DsoAccessResponse{ID: g.ID, UserID: g.UserID, DsoID: g.DsoID, Role: g.Role}
}
