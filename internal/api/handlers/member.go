package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for organization members
type MemberHandler struct {
	service service.MemberServiceInterface
	guard   *auth.Guard
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface, guard *auth.Guard) *MemberHandler {
	return &MemberHandler{service: service, guard: guard}
}

// ListMembers handles GET /api/v1/orgs/:orgId/members
// @Summary List organization members
// @Description Owners first, then admins, then members
// @Tags members
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.MemberResponse "Members"
// @Failure 403 {object} ErrorResponse "Not a member of this organization"
// @Security SessionCookie
// @Router /orgs/{orgId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgAccess(c, orgID, false); denial != nil {
		auth.Abort(c, denial)
		return
	}

	members, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PATCH /api/v1/orgs/:orgId/members
// @Summary Change a member's role
// @Description Only owners may grant or revoke ownership. The last owner cannot be demoted.
// @Tags members
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param member body service.UpdateMemberRoleRequest true "User and role"
// @Success 200 {object} service.MemberResponse "Updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role or last owner"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security SessionCookie
// @Router /orgs/{orgId}/members [patch]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	access, denial := h.guard.RequireOrgAccess(c, orgID, true)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	member, err := h.service.UpdateRole(orgID, access.OrgRole, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/orgs/:orgId/members?user_id=
// @Summary Remove a member
// @Description Owners and admins may remove members; anyone may leave. The last owner cannot be removed.
// @Tags members
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param user_id query string true "User to remove"
// @Success 200 {object} map[string]interface{} "Member removed"
// @Failure 400 {object} ErrorResponse "Missing user_id or last workspace admin"
// @Failure 403 {object} ErrorResponse "Insufficient role or last owner"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security SessionCookie
// @Router /orgs/{orgId}/members [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	orgID, ok := uuidParam(c, "orgId", "organization")
	if !ok {
		return
	}
	access, denial := h.guard.RequireOrgAccess(c, orgID, false)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	if err := h.service.Remove(orgID, access.UserID(), access.OrgRole, c.Query("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
