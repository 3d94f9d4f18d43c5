package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles organization invites and legacy workspace invites
type InviteHandler struct {
	orgInvites  service.OrgInviteServiceInterface
	teamInvites service.TeamInviteServiceInterface
	guard       *auth.Guard
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(orgInvites service.OrgInviteServiceInterface, teamInvites service.TeamInviteServiceInterface, guard *auth.Guard) *InviteHandler {
	return &InviteHandler{orgInvites: orgInvites, teamInvites: teamInvites, guard: guard}
}

// CreateOrgInvite handles POST /api/v1/orgs/:orgId/invites
// @Summary Invite an email into the organization
// @Tags invites
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param invite body service.CreateInviteRequest true "Email and role (admin or member)"
// @Success 201 {object} service.InviteResponse "Invite created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Owner or admin access required"
// @Failure 409 {object} ErrorResponse "A pending invite already exists"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Security SessionCookie
// @Router /orgs/{orgId}/invites [post]
func (h *InviteHandler) CreateOrgInvite(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	access, denial := h.guard.RequireOrgAccess(c, orgID, true)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	invite, err := h.orgInvites.Create(c, orgID, access.UserID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// ListOrgInvites handles GET /api/v1/orgs/:orgId/invites
// @Summary List pending organization invites
// @Tags invites
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.InviteResponse "Pending invites"
// @Failure 403 {object} ErrorResponse "Owner or admin access required"
// @Security SessionCookie
// @Router /orgs/{orgId}/invites [get]
func (h *InviteHandler) ListOrgInvites(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, true); denial != nil {
		auth.Abort(c, denial)
		return
	}

	invites, err := h.orgInvites.ListPending(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}

// CancelOrgInvite handles DELETE /api/v1/orgs/:orgId/invites/:inviteId
// @Summary Cancel a pending organization invite
// @Tags invites
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param inviteId path string true "Invite ID (UUID)"
// @Success 200 {object} map[string]interface{} "Invite cancelled"
// @Failure 403 {object} ErrorResponse "Owner or admin access required"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security SessionCookie
// @Router /orgs/{orgId}/invites/{inviteId} [delete]
func (h *InviteHandler) CancelOrgInvite(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	inviteID, ok := uuidParam(c, "inviteId", "invite")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, true); denial != nil {
		auth.Abort(c, denial)
		return
	}

	if err := h.orgInvites.Cancel(orgID, inviteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invite cancelled"})
}

// CreateTeamInvite handles POST /api/v1/dsos/:dsoId/invites
// @Summary Invite an email to a workspace
// @Description Accepting grants the role on every workspace the inviter holds in the same organization.
// @Tags invites
// @Accept json
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param invite body service.CreateInviteRequest true "Email and role (admin, manager or viewer)"
// @Success 201 {object} service.InviteResponse "Invite created"
// @Failure 403 {object} ErrorResponse "Workspace admin access required"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "A pending invite already exists"
// @Security SessionCookie
// @Router /dsos/{dsoId}/invites [post]
func (h *InviteHandler) CreateTeamInvite(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	access, denial := h.guard.RequireDsoAccess(c, dsoID, true)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	invite, err := h.teamInvites.Create(c, access.Dso, access.UserID(), access.DsoRole, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// ListTeamInvites handles GET /api/v1/dsos/:dsoId/invites
// @Summary List pending workspace invites
// @Tags invites
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Success 200 {array} service.InviteResponse "Pending invites"
// @Failure 403 {object} ErrorResponse "Access denied to this workspace"
// @Security SessionCookie
// @Router /dsos/{dsoId}/invites [get]
func (h *InviteHandler) ListTeamInvites(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgDsoAccess(c, dsoID, false, nil); denial != nil {
		auth.Abort(c, denial)
		return
	}

	invites, err := h.teamInvites.ListPending(dsoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}

// CancelTeamInvite handles DELETE /api/v1/dsos/:dsoId/invites/:inviteId
// @Summary Cancel a pending workspace invite
// @Tags invites
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param inviteId path string true "Invite ID (UUID)"
// @Success 200 {object} map[string]interface{} "Invite cancelled"
// @Failure 403 {object} ErrorResponse "Workspace admin access required"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security SessionCookie
// @Router /dsos/{dsoId}/invites/{inviteId} [delete]
func (h *InviteHandler) CancelTeamInvite(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	inviteID, ok := uuidParam(c, "inviteId", "invite")
	if !ok {
		return
	}
	access, denial := h.guard.RequireDsoAccess(c, dsoID, true)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	if err := h.teamInvites.Cancel(dsoID, access.DsoRole, inviteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invite cancelled"})
}
