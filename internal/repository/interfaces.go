package repository

import (
	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MembershipCheck is the result of a pairwise user/org membership lookup
type MembershipCheck struct {
	IsMember bool
	Role     models.OrgRole
}

// AccessCheck is the result of a user/DSO grant lookup
type AccessCheck struct {
	HasAccess bool
	Role      models.DsoRole
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// OrgMemberRepositoryInterface defines the organization membership store
type OrgMemberRepositoryInterface interface {
	Create(member *models.OrgMember) error
	// GetUserOrg returns the user's membership row, or nil when the user has none.
	GetUserOrg(userID string) (*models.OrgMember, error)
	CheckOrgMembership(userID string, orgID uuid.UUID) (*MembershipCheck, error)
	GetByOrgAndUser(orgID uuid.UUID, userID string) (*models.OrgMember, error)
	ListByOrg(orgID uuid.UUID) ([]models.OrgMember, error)
	// UpdateRoleGuarded changes a role; returns ErrLastOwner when it would leave the org without owners.
	UpdateRoleGuarded(orgID uuid.UUID, userID string, role models.OrgRole) error
	// DeleteGuarded removes a member and their grants on the org's DSOs;
	// returns ErrLastOwner or ErrLastAdmin when an invariant would break.
	DeleteGuarded(orgID uuid.UUID, userID string) error
}

// DsoRepositoryInterface defines the interface for DSO workspace operations
type DsoRepositoryInterface interface {
	Create(dso *models.Dso) error
	GetByID(id uuid.UUID) (*models.Dso, error)
	ListForUser(orgID uuid.UUID, userID string, includeArchived bool) ([]models.Dso, error)
	ListByOrg(orgID uuid.UUID) ([]models.Dso, error)
	Update(dso *models.Dso) error
	SetArchived(id uuid.UUID, archived bool) error
	Delete(id uuid.UUID) error
}

// DsoAccessRepositoryInterface defines the per-DSO access store
type DsoAccessRepositoryInterface interface {
	Create(grant *models.DsoAccessGrant) error
	// CreateMany inserts grants, skipping any (user, dso) pair that already exists.
	CreateMany(grants []models.DsoAccessGrant) (int64, error)
	CheckDsoAccess(userID string, dsoID uuid.UUID) (*AccessCheck, error)
	ListByOrg(orgID uuid.UUID) ([]models.DsoAccessGrant, error)
	ListDsoIDsForUser(userID string) ([]uuid.UUID, error)
	// UpdateRoleGuarded returns ErrLastAdmin when demoting the DSO's last admin.
	UpdateRoleGuarded(userID string, dsoID uuid.UUID, role models.DsoRole) error
	// DeleteGuarded returns ErrLastAdmin when removing the DSO's last admin.
	DeleteGuarded(userID string, dsoID uuid.UUID) error
}

// OrgInviteRepositoryInterface defines the interface for organization invites
type OrgInviteRepositoryInterface interface {
	// Create returns ErrUniqueViolation when a pending invite exists for (org, email).
	Create(invite *models.OrgInvite) error
	GetByID(id uuid.UUID) (*models.OrgInvite, error)
	ListPendingByOrg(orgID uuid.UUID) ([]models.OrgInvite, error)
	ListPendingByEmail(email string) ([]models.OrgInvite, error)
	UpdateStatus(id uuid.UUID, status models.InviteStatus) error
}

// TeamInviteRepositoryInterface defines the interface for legacy workspace invites
type TeamInviteRepositoryInterface interface {
	// Create returns ErrUniqueViolation when a pending invite exists for (dso, email).
	Create(invite *models.TeamInvite) error
	GetByID(id uuid.UUID) (*models.TeamInvite, error)
	ListPendingByDso(dsoID uuid.UUID) ([]models.TeamInvite, error)
	ListPendingByEmail(email string) ([]models.TeamInvite, error)
	UpdateStatus(id uuid.UUID, status models.InviteStatus) error
}

// DoctorRepositoryInterface defines the interface for doctor contacts
type DoctorRepositoryInterface interface {
	Create(doctor *models.Doctor) error
	GetByID(dsoID, id uuid.UUID) (*models.Doctor, error)
	ListByDso(dsoID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error)
	Delete(dsoID, id uuid.UUID) error
}

// ActivityRepositoryInterface defines the interface for activity logging
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	ListByDso(dsoID uuid.UUID, limit, offset int) ([]models.Activity, int64, error)
}

// DataTableRepositoryInterface defines the interface for workspace data tables
type DataTableRepositoryInterface interface {
	Create(table *models.DataTable) error
	ListByDso(dsoID uuid.UUID) ([]models.DataTable, error)
}
