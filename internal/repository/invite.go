package repository

import (
	"time"

	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgInviteRepository handles database operations for organization invites
type OrgInviteRepository struct {
	db *gorm.DB
}

// NewOrgInviteRepository creates a new org invite repository
func NewOrgInviteRepository(db *gorm.DB) *OrgInviteRepository {
	return &OrgInviteRepository{db: db}
}

// Create inserts an invite; the partial unique index on pending rows turns a
// duplicate into ErrUniqueViolation.
func (r *OrgInviteRepository) Create(invite *models.OrgInvite) error {
	return mapPostgresError(r.db.Create(invite).Error)
}

// GetByID retrieves an invite by ID
func (r *OrgInviteRepository) GetByID(id uuid.UUID) (*models.OrgInvite, error) {
	var invite models.OrgInvite
	if err := r.db.First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListPendingByOrg lists pending invites of an organization, newest first
func (r *OrgInviteRepository) ListPendingByOrg(orgID uuid.UUID) ([]models.OrgInvite, error) {
	var invites []models.OrgInvite
	err := r.db.Where("org_id = ? AND status = ?", orgID, models.InviteStatusPending).
		Order("created_at DESC").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// ListPendingByEmail lists pending invites addressed to a normalized email
func (r *OrgInviteRepository) ListPendingByEmail(email string) ([]models.OrgInvite, error) {
	var invites []models.OrgInvite
	err := r.db.Where("email = ? AND status = ?", email, models.InviteStatusPending).
		Order("created_at ASC").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// UpdateStatus transitions an invite; accepting also stamps accepted_at
func (r *OrgInviteRepository) UpdateStatus(id uuid.UUID, status models.InviteStatus) error {
	return updateInviteStatus(r.db.Model(&models.OrgInvite{}), id, status)
}

// TeamInviteRepository handles database operations for legacy workspace invites
type TeamInviteRepository struct {
	db *gorm.DB
}

// NewTeamInviteRepository creates a new team invite repository
func NewTeamInviteRepository(db *gorm.DB) *TeamInviteRepository {
	return &TeamInviteRepository{db: db}
}

// Create inserts an invite; duplicates of a pending invite yield ErrUniqueViolation
func (r *TeamInviteRepository) Create(invite *models.TeamInvite) error {
	return mapPostgresError(r.db.Create(invite).Error)
}

// GetByID retrieves an invite by ID
func (r *TeamInviteRepository) GetByID(id uuid.UUID) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	if err := r.db.First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListPendingByDso lists pending invites of a DSO, newest first
func (r *TeamInviteRepository) ListPendingByDso(dsoID uuid.UUID) ([]models.TeamInvite, error) {
	var invites []models.TeamInvite
	err := r.db.Where("dso_id = ? AND status = ?", dsoID, models.InviteStatusPending).
		Order("created_at DESC").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// ListPendingByEmail lists pending invites addressed to a normalized email
func (r *TeamInviteRepository) ListPendingByEmail(email string) ([]models.TeamInvite, error) {
	var invites []models.TeamInvite
	err := r.db.Where("email = ? AND status = ?", email, models.InviteStatusPending).
		Order("created_at ASC").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// UpdateStatus transitions an invite; accepting also stamps accepted_at
func (r *TeamInviteRepository) UpdateStatus(id uuid.UUID, status models.InviteStatus) error {
	return updateInviteStatus(r.db.Model(&models.TeamInvite{}), id, status)
}

func updateInviteStatus(query *gorm.DB, id uuid.UUID, status models.InviteStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == models.InviteStatusAccepted {
		updates["accepted_at"] = time.Now()
	}
	result := query.Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return mapPostgresError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
