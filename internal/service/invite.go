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
	"cs-crm-backend/internal/notify"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteOptions configures invite expiry and the link put into invite emails
type InviteOptions struct {
	TTL        time.Duration
	AppBaseURL string
}

// CreateInviteRequest represents the request to invite an email address
type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"dana@x.com"`
	Role  string `json:"role" validate:"required" example:"member"`
}

// InviteResponse represents an org or team invite
type InviteResponse struct {
	ID        uuid.UUID           `json:"id"`
	OrgID     *uuid.UUID          `json:"org_id,omitempty"`
	DsoID     *uuid.UUID          `json:"dso_id,omitempty"`
	Email     string              `json:"email"`
	Role      string              `json:"role"`
	Status    models.InviteStatus `json:"status"`
	InvitedBy string              `json:"invited_by"`
	ExpiresAt string              `json:"expires_at"`
	CreatedAt string              `json:"created_at"`
}

// OrgInviteService handles organization invites
type OrgInviteService struct {
	invites   repository.OrgInviteRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	notifier  notify.Notifier
	validator *validator.Validate
	opts      InviteOptions
}

// NewOrgInviteService creates a new org invite service
func NewOrgInviteService(
	invites repository.OrgInviteRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	notifier notify.Notifier,
	validator *validator.Validate,
	opts InviteOptions,
) *OrgInviteService {
	return &OrgInviteService{
		invites:   invites,
		orgs:      orgs,
		notifier:  notifier,
		validator: validator,
		opts:      opts,
	}
}

// Create invites an email into the organization. Owners are never invited; a
// second pending invite for the same email is rejected by the store.
func (s *OrgInviteService) Create(ctx context.Context, orgID uuid.UUID, inviterID string, req *CreateInviteRequest) (*InviteResponse, error) {
	req.Email = models.NormalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := models.ParseOrgRole(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidOrgRole
	}
	if role == models.OrgRoleOwner {
		return nil, apperrors.NewValidationError("role", "owner cannot be invited")
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	invite := &models.OrgInvite{
		OrgID:     orgID,
		Email:     req.Email,
		Role:      role,
		InvitedBy: inviterID,
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().Add(s.opts.TTL),
	}
	if err := s.invites.Create(invite); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrInviteExists
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	sendInvite(ctx, s.notifier, notify.InviteMessage{
		To:        invite.Email,
		Kind:      notify.InviteKindOrganization,
		ScopeName: org.Name,
		Role:      string(role),
		InvitedBy: inviterID,
		ExpiresAt: invite.ExpiresAt,
		AcceptURL: acceptURL(s.opts.AppBaseURL),
	})

	return toOrgInviteResponse(invite), nil
}

// ListPending lists the organization's pending invites
func (s *OrgInviteService) ListPending(orgID uuid.UUID) ([]InviteResponse, error) {
	invites, err := s.invites.ListPendingByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = *toOrgInviteResponse(&invites[i])
	}
	return responses, nil
}

// Cancel cancels a pending invite. Invites of other organizations are reported as not found.
func (s *OrgInviteService) Cancel(orgID, inviteID uuid.UUID) error {
	invite, err := s.invites.GetByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if invite.OrgID != orgID {
		return apperrors.ErrInviteNotFound
	}
	if invite.Status != models.InviteStatusPending {
		return apperrors.ErrInviteNotPending
	}
	if err := s.invites.UpdateStatus(inviteID, models.InviteStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel invite: %w", err)
	}
	return nil
}

// TeamInviteService handles legacy workspace-scoped invites
type TeamInviteService struct {
	invites   repository.TeamInviteRepositoryInterface
	notifier  notify.Notifier
	validator *validator.Validate
	opts      InviteOptions
}

// NewTeamInviteService creates a new team invite service
func NewTeamInviteService(
	invites repository.TeamInviteRepositoryInterface,
	notifier notify.Notifier,
	validator *validator.Validate,
	opts InviteOptions,
) *TeamInviteService {
	return &TeamInviteService{
		invites:   invites,
		notifier:  notifier,
		validator: validator,
		opts:      opts,
	}
}

// Create invites an email to a workspace. The caller must be a workspace admin.
func (s *TeamInviteService) Create(ctx context.Context, dso *models.Dso, inviterID string, inviterRole models.DsoRole, req *CreateInviteRequest) (*InviteResponse, error) {
	if inviterRole != models.DsoRoleAdmin {
		return nil, apperrors.ErrWorkspaceAdminNeeded
	}
	req.Email = models.NormalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := models.ParseDsoRole(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidDsoRole
	}

	invite := &models.TeamInvite{
		DsoID:     dso.ID,
		Email:     req.Email,
		Role:      role,
		InvitedBy: inviterID,
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().Add(s.opts.TTL),
	}
	if err := s.invites.Create(invite); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrInviteExists
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	sendInvite(ctx, s.notifier, notify.InviteMessage{
		To:        invite.Email,
		Kind:      notify.InviteKindWorkspace,
		ScopeName: dso.Name,
		Role:      string(role),
		InvitedBy: inviterID,
		ExpiresAt: invite.ExpiresAt,
		AcceptURL: acceptURL(s.opts.AppBaseURL),
	})

	return toTeamInviteResponse(invite), nil
}

// ListPending lists the workspace's pending invites
func (s *TeamInviteService) ListPending(dsoID uuid.UUID) ([]InviteResponse, error) {
	invites, err := s.invites.ListPendingByDso(dsoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = *toTeamInviteResponse(&invites[i])
	}
	return responses, nil
}

// Cancel cancels a pending invite of the workspace
func (s *TeamInviteService) Cancel(dsoID uuid.UUID, role models.DsoRole, inviteID uuid.UUID) error {
	if role != models.DsoRoleAdmin {
		return apperrors.ErrWorkspaceAdminNeeded
	}
	invite, err := s.invites.GetByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if invite.DsoID != dsoID {
		return apperrors.ErrInviteNotFound
	}
	if invite.Status != models.InviteStatusPending {
		return apperrors.ErrInviteNotPending
	}
	if err := s.invites.UpdateStatus(inviteID, models.InviteStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel invite: %w", err)
	}
	return nil
}

// sendInvite delivers the email; a delivery failure never fails the invite itself
func sendInvite(ctx context.Context, notifier notify.Notifier, msg notify.InviteMessage) {
	if notifier == nil {
		return
	}
	if err := notifier.SendInvite(ctx, msg); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("to", msg.To).Warn("Failed to send invite email")
	}
}

func acceptURL(base string) string {
	return strings.TrimRight(base, "/") + "/login"
}

func toOrgInviteResponse(i *models.OrgInvite) *InviteResponse {
	orgID := i.OrgID
	return &InviteResponse{
		ID:        i.ID,
		OrgID:     &orgID,
		Email:     i.Email,
		Role:      string(i.Role),
		Status:    i.Status,
		InvitedBy: i.InvitedBy,
		ExpiresAt: i.ExpiresAt.Format(time.RFC3339),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamInviteResponse(i *models.TeamInvite) *InviteResponse {
	dsoID := i.DsoID
	return &InviteResponse{
		ID:        i.ID,
		DsoID:     &dsoID,
		Email:     i.Email,
		Role:      string(i.Role),
		Status:    i.Status,
		InvitedBy: i.InvitedBy,
		ExpiresAt: i.ExpiresAt.Format(time.RFC3339),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}
