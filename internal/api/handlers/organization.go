package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
	guard   *auth.Guard
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, guard *auth.Guard) *OrganizationHandler {
	return &OrganizationHandler{service: service, guard: guard}
}

// CreateOrganization handles POST /api/v1/orgs
// @Summary Create an organization
// @Description Create an organization and become its owner. A user may belong to one organization.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.CurrentOrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "User already belongs to an organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /orgs [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	user, denial := h.guard.RequireAuth(c)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	org, err := h.service.Create(c, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetCurrentOrganization handles GET /api/v1/orgs/current
// @Summary Get the caller's organization
// @Tags organizations
// @Produce json
// @Success 200 {object} service.CurrentOrganizationResponse "Organization and role"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User has no organization"
// @Security SessionCookie
// @Router /orgs/current [get]
func (h *OrganizationHandler) GetCurrentOrganization(c *gin.Context) {
	user, denial := h.guard.RequireAuth(c)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	membership, err := h.guard.ActiveOrg(c, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	org, err := h.service.GetCurrent(membership)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetOrganization handles GET /api/v1/orgs/:orgId
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Not a member of this organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security SessionCookie
// @Router /orgs/{orgId} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, false); denial != nil {
		auth.Abort(c, denial)
		return
	}

	org, err := h.service.GetByID(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PATCH /api/v1/orgs/:orgId
// @Summary Rename an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "New name"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Owner or admin access required"
// @Security SessionCookie
// @Router /orgs/{orgId} [patch]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, true); denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	org, err := h.service.Update(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
