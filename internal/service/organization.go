package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugAttempts = 5

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	members   repository.OrgMemberRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	members repository.OrgMemberRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		members:   members,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Acme Dental"`
}

// UpdateOrganizationRequest represents the request to rename an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Acme Dental Group"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedBy string    `json:"created_by"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CurrentOrganizationResponse is the caller's organization and role in it
type CurrentOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Role         models.OrgRole       `json:"role"`
}

// Create creates an organization and makes userID its owner. A user may belong
// to one organization only.
func (s *OrganizationService) Create(ctx context.Context, userID string, req *CreateOrganizationRequest) (*CurrentOrganizationResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.members.GetUserOrg(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyInOrganization
	}

	org := &models.Organization{
		Name:      req.Name,
		CreatedBy: userID,
	}

	for attempt := 0; ; attempt++ {
		org.ID = uuid.Nil
		org.Slug = Slugify(org.Name)
		if attempt > 0 {
			org.Slug = fmt.Sprintf("%s-%s", org.Slug, uuid.NewString()[:6])
		}
		err = s.orgs.Create(org)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrUniqueViolation) || attempt+1 >= maxSlugAttempts {
			return nil, fmt.Errorf("failed to create organization: %w", err)
		}
	}

	owner := &models.OrgMember{
		OrgID:    org.ID,
		UserID:   userID,
		Role:     models.OrgRoleOwner,
		JoinedAt: time.Now(),
	}
	if err := s.members.Create(owner); err != nil {
		// Undo the organization so no owner-less org is left behind
		if delErr := s.orgs.Delete(org.ID); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("org_id", org.ID).Error("Failed to roll back organization")
		}
		return nil, fmt.Errorf("failed to add organization owner: %w", err)
	}

	return &CurrentOrganizationResponse{Organization: *toOrganizationResponse(org), Role: models.OrgRoleOwner}, nil
}

// GetCurrent returns the caller's organization and role
func (s *OrganizationService) GetCurrent(membership *models.OrgMember) (*CurrentOrganizationResponse, error) {
	if membership == nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	org, err := s.GetByID(membership.OrgID)
	if err != nil {
		return nil, err
	}
	return &CurrentOrganizationResponse{Organization: *org, Role: membership.Role}, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// Update renames an organization. The slug is kept stable.
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.Name = req.Name
	if err := s.orgs.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// Slugify lowercases name and collapses every run of non-alphanumerics to a dash
func Slugify(name string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 100 {
		slug = strings.TrimRight(slug[:100], "-")
	}
	if slug == "" {
		slug = "org"
	}
	return slug
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		CreatedBy: org.CreatedBy,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
		UpdatedAt: org.UpdatedAt.Format(time.RFC3339),
	}
}
