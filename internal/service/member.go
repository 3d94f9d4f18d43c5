package service

import (
	"errors"
	"fmt"
	"time"

	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for organization members
type MemberService struct {
	members   repository.OrgMemberRepositoryInterface
	validator *validator.Validate
	recorder  Recorder
}

// NewMemberService creates a new member service
func NewMemberService(members repository.OrgMemberRepositoryInterface, validator *validator.Validate, recorder Recorder) *MemberService {
	return &MemberService{
		members:   members,
		validator: validator,
		recorder:  recorderOrNoop(recorder),
	}
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	UserID string `json:"user_id" validate:"required,max=64" example:"user_123"`
	Role   string `json:"role" validate:"required" example:"admin"`
}

// MemberResponse represents an organization member
type MemberResponse struct {
	ID       uuid.UUID      `json:"id"`
	OrgID    uuid.UUID      `json:"org_id"`
	UserID   string         `json:"user_id"`
	Role     models.OrgRole `json:"role"`
	JoinedAt string         `json:"joined_at"`
}

// List lists the members of an organization
func (s *MemberService) List(orgID uuid.UUID) ([]MemberResponse, error) {
	members, err := s.members.ListByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return responses, nil
}

// UpdateRole changes a member's role. Only owners may grant or revoke ownership,
// and the last owner can never be demoted.
func (s *MemberService) UpdateRole(orgID uuid.UUID, actorRole models.OrgRole, req *UpdateMemberRoleRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := models.ParseOrgRole(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidOrgRole
	}

	target, err := s.getMember(orgID, req.UserID)
	if err != nil {
		return nil, err
	}
	if target.Role == role {
		return toMemberResponse(target), nil
	}

	if target.Role == models.OrgRoleOwner || role == models.OrgRoleOwner {
		if target.Role == models.OrgRoleOwner && actorRole != models.OrgRoleOwner {
			if err := s.rejectIfLastOwner(orgID, apperrors.ErrLastOwnerDemotion); err != nil {
				return nil, err
			}
		}
		if actorRole != models.OrgRoleOwner {
			return nil, apperrors.ErrOwnerRequired
		}
	}

	if err := s.members.UpdateRoleGuarded(orgID, req.UserID, role); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastOwner):
			s.recorder.RecordInvariantRejection("last_owner")
			return nil, apperrors.ErrLastOwnerDemotion
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	target.Role = role
	return toMemberResponse(target), nil
}

// Remove removes a member from the organization together with their grants on
// the organization's workspaces. Members may remove themselves; removing anyone
// else requires owner or admin, and removing an owner requires owner.
func (s *MemberService) Remove(orgID uuid.UUID, actorID string, actorRole models.OrgRole, targetUserID string) error {
	if targetUserID == "" {
		return apperrors.NewValidationError("user_id", "is required")
	}
	self := actorID == targetUserID
	if !self && !actorRole.CanManage() {
		return apperrors.ErrOwnerOrAdminRequired
	}

	target, err := s.getMember(orgID, targetUserID)
	if err != nil {
		return err
	}

	if target.Role == models.OrgRoleOwner && !self && actorRole != models.OrgRoleOwner {
		if err := s.rejectIfLastOwner(orgID, apperrors.ErrLastOwnerRemoval); err != nil {
			return err
		}
		return apperrors.ErrOwnerRequired
	}

	if err := s.members.DeleteGuarded(orgID, targetUserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastOwner):
			s.recorder.RecordInvariantRejection("last_owner")
			return apperrors.ErrLastOwnerRemoval
		case errors.Is(err, repository.ErrLastAdmin):
			s.recorder.RecordInvariantRejection("last_admin")
			return apperrors.ErrMemberIsLastWorkspaceAdmin
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// rejectIfLastOwner reports the zero-owner violation ahead of the owner-only
// rule, so a sole owner is always answered with the invariant message.
func (s *MemberService) rejectIfLastOwner(orgID uuid.UUID, violation error) error {
	members, err := s.members.ListByOrg(orgID)
	if err != nil {
		return fmt.Errorf("failed to count owners: %w", err)
	}
	owners := 0
	for _, m := range members {
		if m.Role == models.OrgRoleOwner {
			owners++
		}
	}
	if owners <= 1 {
		s.recorder.RecordInvariantRejection("last_owner")
		return violation
	}
	return nil
}

func (s *MemberService) getMember(orgID uuid.UUID, userID string) (*models.OrgMember, error) {
	member, err := s.members.GetByOrgAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func toMemberResponse(m *models.OrgMember) *MemberResponse {
	return &MemberResponse{
		ID:       m.ID,
		OrgID:    m.OrgID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}
