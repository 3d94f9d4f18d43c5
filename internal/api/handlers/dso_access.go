package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DsoAccessHandler handles the org-scoped workspace access matrix
type DsoAccessHandler struct {
	service service.DsoAccessServiceInterface
	guard   *auth.Guard
}

// NewDsoAccessHandler creates a new access matrix handler
func NewDsoAccessHandler(service service.DsoAccessServiceInterface, guard *auth.Guard) *DsoAccessHandler {
	return &DsoAccessHandler{service: service, guard: guard}
}

// ListAccess handles GET /api/v1/orgs/:orgId/dso-access
// @Summary List workspace grants of the organization
// @Tags dso-access
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.DsoAccessResponse "Grants"
// @Failure 403 {object} ErrorResponse "Owner or admin access required"
// @Security SessionCookie
// @Router /orgs/{orgId}/dso-access [get]
func (h *DsoAccessHandler) ListAccess(c *gin.Context) {
	orgID, ok := h.authorize(c)
	if !ok {
		return
	}

	grants, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grants)
}

// GrantAccess handles POST /api/v1/orgs/:orgId/dso-access
// @Summary Grant a member access to a workspace
// @Description The workspace must belong to the organization and the user must be a member of it.
// @Tags dso-access
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param grant body service.DsoAccessRequest true "User, workspace and role"
// @Success 201 {object} service.DsoAccessResponse "Grant created"
// @Failure 400 {object} ErrorResponse "User is not a member of this organization"
// @Failure 403 {object} ErrorResponse "DSO not in this organization"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "Grant already exists"
// @Security SessionCookie
// @Router /orgs/{orgId}/dso-access [post]
func (h *DsoAccessHandler) GrantAccess(c *gin.Context) {
	orgID, ok := h.authorize(c)
	if !ok {
		return
	}

	var req service.DsoAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	grant, err := h.service.Grant(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, grant)
}

// UpdateAccess handles PATCH /api/v1/orgs/:orgId/dso-access
// @Summary Change a workspace grant's role
// @Tags dso-access
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param grant body service.DsoAccessRequest true "User, workspace and role"
// @Success 200 {object} service.DsoAccessResponse "Grant updated"
// @Failure 400 {object} ErrorResponse "Last admin of the workspace"
// @Security SessionCookie
// @Router /orgs/{orgId}/dso-access [patch]
func (h *DsoAccessHandler) UpdateAccess(c *gin.Context) {
	orgID, ok := h.authorize(c)
	if !ok {
		return
	}

	var req service.DsoAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	grant, err := h.service.UpdateRole(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grant)
}

// RevokeAccess handles DELETE /api/v1/orgs/:orgId/dso-access?user_id=&dso_id=
// @Summary Revoke a workspace grant
// @Tags dso-access
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param user_id query string true "User"
// @Param dso_id query string true "Workspace ID (UUID)"
// @Success 200 {object} map[string]interface{} "Grant revoked"
// @Failure 400 {object} ErrorResponse "Last admin of the workspace"
// @Security SessionCookie
// @Router /orgs/{orgId}/dso-access [delete]
func (h *DsoAccessHandler) RevokeAccess(c *gin.Context) {
	orgID, ok := h.authorize(c)
	if !ok {
		return
	}

	dsoID, err := uuid.Parse(c.Query("dso_id"))
	if err != nil {
		badRequest(c, "Invalid workspace ID: invalid UUID format", nil)
		return
	}

	if err := h.service.Revoke(orgID, c.Query("user_id"), dsoID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Access revoked"})
}

// authorize requires an owner or admin of the path organization
func (h *DsoAccessHandler) authorize(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return uuid.Nil, false
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, true); denial != nil {
		auth.Abort(c, denial)
		return uuid.Nil, false
	}
	return orgID, true
}
