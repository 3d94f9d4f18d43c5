package testutils

import (
	"fmt"
	"time"

	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory builds test organizations
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create returns an organization with a unique slug
func (f *OrganizationFactory) Create(createdBy string) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Acme Dental",
		Slug:      "acme-dental-" + id.String()[:8],
		CreatedBy: createdBy,
	}
}

// MemberFactory builds org memberships
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create returns a membership of userID in orgID
func (f *MemberFactory) Create(orgID uuid.UUID, userID string, role models.OrgRole) *models.OrgMember {
	return &models.OrgMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OrgID:     orgID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
}

// DsoFactory builds workspaces
type DsoFactory struct{}

// NewDsoFactory creates a new DsoFactory
func NewDsoFactory() *DsoFactory {
	return &DsoFactory{}
}

// Create returns a workspace in orgID; a nil orgID gives a legacy workspace
func (f *DsoFactory) Create(orgID *uuid.UUID, name string) *models.Dso {
	return &models.Dso{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		OrgID:     orgID,
	}
}

// GrantFactory builds workspace grants
type GrantFactory struct{}

// NewGrantFactory creates a new GrantFactory
func NewGrantFactory() *GrantFactory {
	return &GrantFactory{}
}

// Create returns a grant of role on dsoID for userID
func (f *GrantFactory) Create(userID string, dsoID uuid.UUID, role models.DsoRole) *models.DsoAccessGrant {
	return &models.DsoAccessGrant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		DsoID:     dsoID,
		Role:      role,
	}
}

// InviteFactory builds pending invites
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// OrgInvite returns a pending org invite expiring in ttl
func (f *InviteFactory) OrgInvite(orgID uuid.UUID, email, invitedBy string, role models.OrgRole, ttl time.Duration) *models.OrgInvite {
	return &models.OrgInvite{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OrgID:     orgID,
		Email:     models.NormalizeEmail(email),
		Role:      role,
		InvitedBy: invitedBy,
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
}

// TeamInvite returns a pending workspace invite expiring in ttl
func (f *InviteFactory) TeamInvite(dsoID uuid.UUID, email, invitedBy string, role models.DsoRole, ttl time.Duration) *models.TeamInvite {
	return &models.TeamInvite{
		BaseModel: models.BaseModel{ID: uuid.New()},
		DsoID:     dsoID,
		Email:     models.NormalizeEmail(email),
		Role:      role,
		InvitedBy: invitedBy,
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
}

// UserID returns a distinct user id with a readable prefix
func UserID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
}

// FactorySet groups every factory for suites that need several
type FactorySet struct {
	Organization *OrganizationFactory
	Member       *MemberFactory
	Dso          *DsoFactory
	Grant        *GrantFactory
	Invite       *InviteFactory
}

// NewFactorySet creates a FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Member:       NewMemberFactory(),
		Dso:          NewDsoFactory(),
		Grant:        NewGrantFactory(),
		Invite:       NewInviteFactory(),
	}
}
