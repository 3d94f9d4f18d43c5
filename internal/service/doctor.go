package service

import (
	"errors"
	"fmt"
	"strings"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DoctorService handles doctor contacts inside a workspace
type DoctorService struct {
	repo      repository.DoctorRepositoryInterface
	validator *validator.Validate
}

// NewDoctorService creates a new doctor service
func NewDoctorService(repo repository.DoctorRepositoryInterface, validator *validator.Validate) *DoctorService {
	return &DoctorService{repo: repo, validator: validator}
}

// CreateDoctorRequest represents the request to add a doctor
type CreateDoctorRequest struct {
	auth.FallbackBody
	Name      string `json:"name" validate:"required,min=1,max=200" example:"Dr. Ada Moss"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Notes     string `json:"notes"`
}

// DoctorListResponse is a page of doctors
type DoctorListResponse struct {
	Doctors  []models.Doctor `json:"doctors"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create adds a doctor to dsoID
func (s *DoctorService) Create(dsoID uuid.UUID, userID string, req *CreateDoctorRequest) (*models.Doctor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doctor := &models.Doctor{
		DsoID:     dsoID,
		Name:      strings.TrimSpace(req.Name),
		Email:     models.NormalizeEmail(req.Email),
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Notes:     req.Notes,
		CreatedBy: userID,
	}
	if err := s.repo.Create(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// List returns one page of the doctors of dsoID
func (s *DoctorService) List(dsoID uuid.UUID, page, pageSize int) (*DoctorListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	doctors, total, err := s.repo.ListByDso(dsoID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return &DoctorListResponse{Doctors: doctors, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete removes a doctor. A doctor of another workspace is reported as not found.
func (s *DoctorService) Delete(dsoID, id uuid.UUID) error {
	if err := s.repo.Delete(dsoID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
