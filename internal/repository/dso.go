package repository

import (
	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DsoRepository handles database operations for DSO workspaces
type DsoRepository struct {
	db *gorm.DB
}

// NewDsoRepository creates a new DSO repository
func NewDsoRepository(db *gorm.DB) *DsoRepository {
	return &DsoRepository{db: db}
}

// Create creates a new DSO
func (r *DsoRepository) Create(dso *models.Dso) error {
	return mapPostgresError(r.db.Create(dso).Error)
}

// GetByID retrieves a DSO by ID, archived or not
func (r *DsoRepository) GetByID(id uuid.UUID) (*models.Dso, error) {
	var dso models.Dso
	err := r.db.First(&dso, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dso, nil
}

// ListForUser lists the DSOs of orgID that userID holds a grant on
func (r *DsoRepository) ListForUser(orgID uuid.UUID, userID string, includeArchived bool) ([]models.Dso, error) {
	var dsos []models.Dso
	query := r.db.
		Joins("JOIN user_dso_access ON user_dso_access.dso_id = dsos.id").
		Where("dsos.org_id = ? AND user_dso_access.user_id = ?", orgID, userID)
	if !includeArchived {
		query = query.Where("dsos.archived = ?", false)
	}
	if err := query.Order("dsos.name ASC").Find(&dsos).Error; err != nil {
		return nil, err
	}
	return dsos, nil
}

// ListByOrg lists every DSO of an organization, archived included
func (r *DsoRepository) ListByOrg(orgID uuid.UUID) ([]models.Dso, error) {
	var dsos []models.Dso
	if err := r.db.Where("org_id = ?", orgID).Order("name ASC").Find(&dsos).Error; err != nil {
		return nil, err
	}
	return dsos, nil
}

// Update updates a DSO
func (r *DsoRepository) Update(dso *models.Dso) error {
	return mapPostgresError(r.db.Save(dso).Error)
}

// SetArchived soft-deletes or restores a DSO
func (r *DsoRepository) SetArchived(id uuid.UUID, archived bool) error {
	result := r.db.Model(&models.Dso{}).Where("id = ?", id).Update("archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes a DSO. Only used to compensate a failed creation.
func (r *DsoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Dso{}, "id = ?", id).Error
}
