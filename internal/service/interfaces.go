package service

import (
	"context"

	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, userID string, req *CreateOrganizationRequest) (*CurrentOrganizationResponse, error)
	GetCurrent(membership *models.OrgMember) (*CurrentOrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// MemberServiceInterface defines the interface for org member service
type MemberServiceInterface interface {
	List(orgID uuid.UUID) ([]MemberResponse, error)
	UpdateRole(orgID uuid.UUID, actorRole models.OrgRole, req *UpdateMemberRoleRequest) (*MemberResponse, error)
	Remove(orgID uuid.UUID, actorID string, actorRole models.OrgRole, targetUserID string) error
}

// OrgInviteServiceInterface defines the interface for organization invites
type OrgInviteServiceInterface interface {
	Create(ctx context.Context, orgID uuid.UUID, inviterID string, req *CreateInviteRequest) (*InviteResponse, error)
	ListPending(orgID uuid.UUID) ([]InviteResponse, error)
	Cancel(orgID, inviteID uuid.UUID) error
}

// TeamInviteServiceInterface defines the interface for workspace invites
type TeamInviteServiceInterface interface {
	Create(ctx context.Context, dso *models.Dso, inviterID string, inviterRole models.DsoRole, req *CreateInviteRequest) (*InviteResponse, error)
	ListPending(dsoID uuid.UUID) ([]InviteResponse, error)
	Cancel(dsoID uuid.UUID, role models.DsoRole, inviteID uuid.UUID) error
}

// DsoServiceInterface defines the interface for workspace service
type DsoServiceInterface interface {
	Create(ctx context.Context, orgID uuid.UUID, userID string, req *CreateDsoRequest) (*DsoResponse, error)
	ListForUser(orgID uuid.UUID, userID string, includeArchived bool) ([]DsoResponse, error)
	Get(dso *models.Dso, role models.DsoRole) *DsoResponse
	Update(id uuid.UUID, req *UpdateDsoRequest) (*DsoResponse, error)
	SetArchived(id uuid.UUID, role models.DsoRole, archived bool) error
}

// DsoAccessServiceInterface defines the interface for the org-scoped access matrix
type DsoAccessServiceInterface interface {
	List(orgID uuid.UUID) ([]DsoAccessResponse, error)
	Grant(orgID uuid.UUID, req *DsoAccessRequest) (*DsoAccessResponse, error)
	UpdateRole(orgID uuid.UUID, req *DsoAccessRequest) (*DsoAccessResponse, error)
	Revoke(orgID uuid.UUID, userID string, dsoID uuid.UUID) error
}

// ReconcileServiceInterface defines the interface for invite reconciliation
type ReconcileServiceInterface interface {
	Reconcile(ctx context.Context, userID, email string) (*ReconcileResult, error)
}

// DoctorServiceInterface defines the interface for doctor service
type DoctorServiceInterface interface {
	Create(dsoID uuid.UUID, userID string, req *CreateDoctorRequest) (*models.Doctor, error)
	List(dsoID uuid.UUID, page, pageSize int) (*DoctorListResponse, error)
	Delete(dsoID, id uuid.UUID) error
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	Create(dsoID uuid.UUID, userID string, req *CreateActivityRequest) (*models.Activity, error)
	List(dsoID uuid.UUID, page, pageSize int) (*ActivityListResponse, error)
}

// DataTableServiceInterface defines the interface for data table service
type DataTableServiceInterface interface {
	Create(dsoID uuid.UUID, userID string, req *CreateDataTableRequest) (*models.DataTable, error)
	List(dsoID uuid.UUID) ([]models.DataTable, error)
}

var (
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ MemberServiceInterface       = (*MemberService)(nil)
	_ OrgInviteServiceInterface    = (*OrgInviteService)(nil)
	_ TeamInviteServiceInterface   = (*TeamInviteService)(nil)
	_ DsoServiceInterface          = (*DsoService)(nil)
	_ DsoAccessServiceInterface    = (*DsoAccessService)(nil)
	_ ReconcileServiceInterface    = (*ReconcileService)(nil)
	_ DoctorServiceInterface       = (*DoctorService)(nil)
	_ ActivityServiceInterface     = (*ActivityService)(nil)
	_ DataTableServiceInterface    = (*DataTableService)(nil)
)
