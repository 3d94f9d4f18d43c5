package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService logs and lists workspace activities
type ActivityService struct {
	activities repository.ActivityRepositoryInterface
	doctors    repository.DoctorRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewActivityService creates a new activity service
func NewActivityService(activities repository.ActivityRepositoryInterface, doctors repository.DoctorRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		activities: activities,
		doctors:    doctors,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateActivityRequest represents the request to log an activity
type CreateActivityRequest struct {
	auth.FallbackBody
	Type        string     `json:"type" validate:"required,oneof=call email meeting visit note" example:"call"`
	Description string     `json:"description" validate:"max=5000"`
	DoctorID    *uuid.UUID `json:"doctor_id,omitempty"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

// ActivityListResponse is a page of activities, newest first
type ActivityListResponse struct {
	Activities []models.Activity `json:"activities"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// Create logs an activity in dsoID. A referenced doctor must belong to the same workspace.
func (s *ActivityService) Create(dsoID uuid.UUID, userID string, req *CreateActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.DoctorID != nil {
		if _, err := s.doctors.GetByID(dsoID, *req.DoctorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDoctorNotFound
			}
			return nil, fmt.Errorf("failed to get doctor: %w", err)
		}
	}

	occurred := s.now().UTC()
	if req.OccurredAt != nil {
		occurred = req.OccurredAt.UTC()
	}

	activity := &models.Activity{
		DsoID:       dsoID,
		DoctorID:    req.DoctorID,
		Type:        models.ActivityType(req.Type),
		Description: strings.TrimSpace(req.Description),
		OccurredAt:  occurred,
		CreatedBy:   userID,
	}
	if err := s.activities.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// List returns one page of the activities of dsoID
func (s *ActivityService) List(dsoID uuid.UUID, page, pageSize int) (*ActivityListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	activities, total, err := s.activities.ListByDso(dsoID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return &ActivityListResponse{Activities: activities, Total: total, Page: page, PageSize: pageSize}, nil
}
