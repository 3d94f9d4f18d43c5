package repository

import (
	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DsoAccessRepository handles database operations for per-DSO access grants
type DsoAccessRepository struct {
	db *gorm.DB
}

// NewDsoAccessRepository creates a new DSO access repository
func NewDsoAccessRepository(db *gorm.DB) *DsoAccessRepository {
	return &DsoAccessRepository{db: db}
}

// Create creates a new grant
func (r *DsoAccessRepository) Create(grant *models.DsoAccessGrant) error {
	return mapPostgresError(r.db.Create(grant).Error)
}

// CreateMany inserts grants and silently skips pairs that already exist.
// Returns the number of rows actually inserted.
func (r *DsoAccessRepository) CreateMany(grants []models.DsoAccessGrant) (int64, error) {
	if len(grants) == 0 {
		return 0, nil
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&grants)
	if result.Error != nil {
		return 0, mapPostgresError(result.Error)
	}
	return result.RowsAffected, nil
}

// CheckDsoAccess reports whether userID holds a grant on dsoID and with which role
func (r *DsoAccessRepository) CheckDsoAccess(userID string, dsoID uuid.UUID) (*AccessCheck, error) {
	var grants []models.DsoAccessGrant
	err := r.db.Where("user_id = ? AND dso_id = ?", userID, dsoID).Limit(1).Find(&grants).Error
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return &AccessCheck{}, nil
	}
	return &AccessCheck{HasAccess: true, Role: grants[0].Role}, nil
}

// ListByOrg lists every grant on every DSO of orgID
func (r *DsoAccessRepository) ListByOrg(orgID uuid.UUID) ([]models.DsoAccessGrant, error) {
	var grants []models.DsoAccessGrant
	err := r.db.
		Joins("JOIN dsos ON dsos.id = user_dso_access.dso_id").
		Where("dsos.org_id = ?", orgID).
		Order("user_dso_access.dso_id, user_dso_access.user_id").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// ListDsoIDsForUser returns the ids of every DSO userID holds a grant on
func (r *DsoAccessRepository) ListDsoIDsForUser(userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.DsoAccessGrant{}).Where("user_id = ?", userID).Pluck("dso_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateRoleGuarded changes a grant's role, refusing to demote the last admin
func (r *DsoAccessRepository) UpdateRoleGuarded(userID string, dsoID uuid.UUID, role models.DsoRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		admins, err := lockAdmins(tx, dsoID)
		if err != nil {
			return err
		}

		var grant models.DsoAccessGrant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&grant, "user_id = ? AND dso_id = ?", userID, dsoID).Error; err != nil {
			return err
		}

		if grant.Role == models.DsoRoleAdmin && role != models.DsoRoleAdmin && admins <= 1 {
			return ErrLastAdmin
		}

		return mapPostgresError(tx.Model(&grant).Update("role", role).Error)
	})
}

// DeleteGuarded removes a grant, refusing to remove the last admin
func (r *DsoAccessRepository) DeleteGuarded(userID string, dsoID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		admins, err := lockAdmins(tx, dsoID)
		if err != nil {
			return err
		}

		var grant models.DsoAccessGrant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&grant, "user_id = ? AND dso_id = ?", userID, dsoID).Error; err != nil {
			return err
		}

		if grant.Role == models.DsoRoleAdmin && admins <= 1 {
			return ErrLastAdmin
		}

		return tx.Delete(&grant).Error
	})
}

// lockAdmins locks every admin grant of dsoID for the rest of tx and returns the count
func lockAdmins(tx *gorm.DB, dsoID uuid.UUID) (int, error) {
	var admins []models.DsoAccessGrant
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("dso_id = ? AND role = ?", dsoID, models.DsoRoleAdmin).
		Order("id").
		Find(&admins).Error
	if err != nil {
		return 0, err
	}
	return len(admins), nil
}
