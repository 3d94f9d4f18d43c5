package repository

import (
	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrgMemberRepository handles database operations for organization memberships
type OrgMemberRepository struct {
	db *gorm.DB
}

// NewOrgMemberRepository creates a new org member repository
func NewOrgMemberRepository(db *gorm.DB) *OrgMemberRepository {
	return &OrgMemberRepository{db: db}
}

// Create creates a new membership
func (r *OrgMemberRepository) Create(member *models.OrgMember) error {
	return mapPostgresError(r.db.Create(member).Error)
}

// GetUserOrg returns the user's membership row, or nil when the user has none.
// If the one-org-per-user convention has been broken, the earliest row wins.
func (r *OrgMemberRepository) GetUserOrg(userID string) (*models.OrgMember, error) {
	var members []models.OrgMember
	err := r.db.Where("user_id = ?", userID).Order("joined_at ASC").Limit(1).Find(&members).Error
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}
	return &members[0], nil
}

// CheckOrgMembership reports whether userID belongs to orgID and with which role
func (r *OrgMemberRepository) CheckOrgMembership(userID string, orgID uuid.UUID) (*MembershipCheck, error) {
	var members []models.OrgMember
	err := r.db.Where("org_id = ? AND user_id = ?", orgID, userID).Limit(1).Find(&members).Error
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return &MembershipCheck{}, nil
	}
	return &MembershipCheck{IsMember: true, Role: members[0].Role}, nil
}

// GetByOrgAndUser retrieves a single membership row
func (r *OrgMemberRepository) GetByOrgAndUser(orgID uuid.UUID, userID string) (*models.OrgMember, error) {
	var member models.OrgMember
	err := r.db.First(&member, "org_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByOrg lists all members of an organization, owners first
func (r *OrgMemberRepository) ListByOrg(orgID uuid.UUID) ([]models.OrgMember, error) {
	var members []models.OrgMember
	err := r.db.Where("org_id = ?", orgID).
		Order("CASE role WHEN 'owner' THEN 0 WHEN 'admin' THEN 1 ELSE 2 END, joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateRoleGuarded changes a member's role. The org's owner rows are locked
// before counting so concurrent demotions cannot both pass the check.
func (r *OrgMemberRepository) UpdateRoleGuarded(orgID uuid.UUID, userID string, role models.OrgRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		owners, err := lockOwners(tx, orgID)
		if err != nil {
			return err
		}

		var member models.OrgMember
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, "org_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
			return err
		}

		if member.Role == models.OrgRoleOwner && role != models.OrgRoleOwner && owners <= 1 {
			return ErrLastOwner
		}

		return mapPostgresError(tx.Model(&member).Update("role", role).Error)
	})
}

// DeleteGuarded removes a member together with their grants on the org's DSOs.
// Fails with ErrLastOwner or ErrLastAdmin without deleting anything.
func (r *OrgMemberRepository) DeleteGuarded(orgID uuid.UUID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		owners, err := lockOwners(tx, orgID)
		if err != nil {
			return err
		}

		var member models.OrgMember
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, "org_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
			return err
		}

		if member.Role == models.OrgRoleOwner && owners <= 1 {
			return ErrLastOwner
		}

		// Admin rows are locked before the member's grant rows, in dso_id order,
		// matching the order DsoAccessRepository takes them.
		var dsoIDs []uuid.UUID
		if err := tx.Model(&models.DsoAccessGrant{}).
			Joins("JOIN dsos ON dsos.id = user_dso_access.dso_id").
			Where("dsos.org_id = ? AND user_dso_access.user_id = ?", orgID, userID).
			Order("user_dso_access.dso_id").
			Pluck("user_dso_access.dso_id", &dsoIDs).Error; err != nil {
			return err
		}
		admins := make(map[uuid.UUID]int, len(dsoIDs))
		for _, dsoID := range dsoIDs {
			count, err := lockAdmins(tx, dsoID)
			if err != nil {
				return err
			}
			admins[dsoID] = count
		}

		var grants []models.DsoAccessGrant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "user_dso_access"}}).
			Joins("JOIN dsos ON dsos.id = user_dso_access.dso_id").
			Where("dsos.org_id = ? AND user_dso_access.user_id = ?", orgID, userID).
			Find(&grants).Error; err != nil {
			return err
		}

		grantIDs := make([]uuid.UUID, 0, len(grants))
		for _, grant := range grants {
			if grant.Role == models.DsoRoleAdmin {
				count, locked := admins[grant.DsoID]
				if !locked {
					// granted after the lookup above
					if count, err = lockAdmins(tx, grant.DsoID); err != nil {
						return err
					}
				}
				if count <= 1 {
					return ErrLastAdmin
				}
			}
			grantIDs = append(grantIDs, grant.ID)
		}

		if len(grantIDs) > 0 {
			if err := tx.Where("id IN ?", grantIDs).Delete(&models.DsoAccessGrant{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&member).Error
	})
}

// lockOwners locks every owner row of orgID for the rest of tx and returns the count
func lockOwners(tx *gorm.DB, orgID uuid.UUID) (int, error) {
	var owners []models.OrgMember
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("org_id = ? AND role = ?", orgID, models.OrgRoleOwner).
		Order("id").
		Find(&owners).Error
	if err != nil {
		return 0, err
	}
	return len(owners), nil
}
