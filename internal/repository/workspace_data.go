package repository

import (
	"cs-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorRepository handles database operations for doctors
type DoctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create creates a new doctor
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return mapPostgresError(r.db.Create(doctor).Error)
}

// GetByID retrieves a doctor, scoped to its DSO
func (r *DoctorRepository) GetByID(dsoID, id uuid.UUID) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, "dso_id = ? AND id = ?", dsoID, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// ListByDso lists doctors of a DSO with pagination
func (r *DoctorRepository) ListByDso(dsoID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error) {
	var doctors []models.Doctor
	var total int64

	if err := r.db.Model(&models.Doctor{}).Where("dso_id = ?", dsoID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("dso_id = ?", dsoID).Order("name ASC").Limit(limit).Offset(offset).Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

// Delete deletes a doctor, scoped to its DSO
func (r *DoctorRepository) Delete(dsoID, id uuid.UUID) error {
	result := r.db.Where("dso_id = ? AND id = ?", dsoID, id).Delete(&models.Doctor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create logs a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return mapPostgresError(r.db.Create(activity).Error)
}

// ListByDso lists activities of a DSO, most recent first
func (r *ActivityRepository) ListByDso(dsoID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	if err := r.db.Model(&models.Activity{}).Where("dso_id = ?", dsoID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("dso_id = ?", dsoID).Order("occurred_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// DataTableRepository handles database operations for data tables
type DataTableRepository struct {
	db *gorm.DB
}

// NewDataTableRepository creates a new data table repository
func NewDataTableRepository(db *gorm.DB) *DataTableRepository {
	return &DataTableRepository{db: db}
}

// Create creates a new data table
func (r *DataTableRepository) Create(table *models.DataTable) error {
	return mapPostgresError(r.db.Create(table).Error)
}

// ListByDso lists the data tables of a DSO
func (r *DataTableRepository) ListByDso(dsoID uuid.UUID) ([]models.DataTable, error) {
	var tables []models.DataTable
	if err := r.db.Where("dso_id = ?", dsoID).Order("name ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
