package handlers

import (
	"net/http"
	"strconv"

	"cs-crm-backend/internal/auth"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DsoHandler handles HTTP requests for DSO workspaces
type DsoHandler struct {
	service service.DsoServiceInterface
	guard   *auth.Guard
}

// NewDsoHandler creates a new workspace handler
func NewDsoHandler(service service.DsoServiceInterface, guard *auth.Guard) *DsoHandler {
	return &DsoHandler{service: service, guard: guard}
}

// CreateDso handles POST /api/v1/dsos
// @Summary Create a workspace
// @Description Create a workspace in the caller's organization; the caller becomes its admin.
// @Tags dsos
// @Accept json
// @Produce json
// @Param dso body service.CreateDsoRequest true "Workspace data"
// @Success 201 {object} service.DsoResponse "Workspace created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller has no organization"
// @Security SessionCookie
// @Router /dsos [post]
func (h *DsoHandler) CreateDso(c *gin.Context) {
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
	if membership == nil {
		respondError(c, apperrors.ErrNoOrganization)
		return
	}

	var req service.CreateDsoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	dso, err := h.service.Create(c, membership.OrgID, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dso)
}

// ListDsos handles GET /api/v1/dsos
// @Summary List the caller's workspaces
// @Description Workspaces of the caller's organization on which the caller holds a grant
// @Tags dsos
// @Produce json
// @Param include_archived query bool false "Include archived workspaces"
// @Success 200 {array} service.DsoResponse "Workspaces"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /dsos [get]
func (h *DsoHandler) ListDsos(c *gin.Context) {
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
	if membership == nil {
		c.JSON(http.StatusOK, []service.DsoResponse{})
		return
	}

	includeArchived, _ := strconv.ParseBool(c.Query("include_archived"))
	dsos, err := h.service.ListForUser(membership.OrgID, user.ID, includeArchived)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dsos)
}

// GetDso handles GET /api/v1/dsos/:dsoId
// @Summary Get a workspace
// @Tags dsos
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Success 200 {object} service.DsoResponse "Workspace"
// @Failure 403 {object} ErrorResponse "Not a member of this organization or no access"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security SessionCookie
// @Router /dsos/{dsoId} [get]
func (h *DsoHandler) GetDso(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	access, denial := h.guard.RequireOrgDsoAccess(c, dsoID, false, nil)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	c.JSON(http.StatusOK, h.service.Get(access.Dso, access.DsoRole))
}

// UpdateDso handles PATCH /api/v1/dsos/:dsoId
// @Summary Rename a workspace
// @Tags dsos
// @Accept json
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param dso body service.UpdateDsoRequest true "New name"
// @Success 200 {object} service.DsoResponse "Workspace"
// @Failure 403 {object} ErrorResponse "Write access required"
// @Security SessionCookie
// @Router /dsos/{dsoId} [patch]
func (h *DsoHandler) UpdateDso(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgDsoAccess(c, dsoID, true, nil); denial != nil {
		auth.Abort(c, denial)
		return
	}

	var req service.UpdateDsoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	dso, err := h.service.Update(dsoID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dso)
}

// ArchiveDso handles POST /api/v1/dsos/:dsoId/archive
// @Summary Archive a workspace
// @Tags dsos
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Success 200 {object} map[string]interface{} "Workspace archived"
// @Failure 403 {object} ErrorResponse "Workspace admin access required"
// @Security SessionCookie
// @Router /dsos/{dsoId}/archive [post]
func (h *DsoHandler) ArchiveDso(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveDso handles POST /api/v1/dsos/:dsoId/unarchive
// @Summary Restore an archived workspace
// @Tags dsos
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Success 200 {object} map[string]interface{} "Workspace restored"
// @Failure 403 {object} ErrorResponse "Workspace admin access required"
// @Security SessionCookie
// @Router /dsos/{dsoId}/unarchive [post]
func (h *DsoHandler) UnarchiveDso(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *DsoHandler) setArchived(c *gin.Context, archived bool) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	access, denial := h.guard.RequireOrgDsoAccess(c, dsoID, true, nil)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	if err := h.service.SetArchived(dsoID, access.DsoRole, archived); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"archived": archived})
}
