package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/logger"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the signed-in user's own view and invite reconciliation
type MeHandler struct {
	reconcile service.ReconcileServiceInterface
	orgs      service.OrganizationServiceInterface
	dsos      service.DsoServiceInterface
	guard     *auth.Guard
}

// NewMeHandler creates a new me handler
func NewMeHandler(
	reconcile service.ReconcileServiceInterface,
	orgs service.OrganizationServiceInterface,
	dsos service.DsoServiceInterface,
	guard *auth.Guard,
) *MeHandler {
	return &MeHandler{reconcile: reconcile, orgs: orgs, dsos: dsos, guard: guard}
}

// MeResponse describes the caller after pending invites were applied
type MeResponse struct {
	User         *auth.Identity                       `json:"user"`
	Organization *service.CurrentOrganizationResponse `json:"organization"`
	DsoCount     int                                  `json:"dso_count"`
	Reconciled   *service.ReconcileResult             `json:"reconciled,omitempty"`
}

// Reconcile handles POST /api/v1/me/reconcile
// @Summary Accept pending invites
// @Description Convert pending invites for the session email into memberships and grants
// @Tags me
// @Produce json
// @Success 200 {object} service.ReconcileResult "Reconciliation summary"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /me/reconcile [post]
func (h *MeHandler) Reconcile(c *gin.Context) {
	user, denial := h.guard.RequireAuth(c)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	result, err := h.reconcile.Reconcile(c, user.ID, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMe handles GET /api/v1/me
// @Summary Get the signed-in user
// @Description Accept pending invites, then return the user, organization and workspace count
// @Tags me
// @Produce json
// @Success 200 {object} MeResponse "Current user"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /me [get]
func (h *MeHandler) GetMe(c *gin.Context) {
	user, denial := h.guard.RequireAuth(c)
	if denial != nil {
		auth.Abort(c, denial)
		return
	}

	resp := MeResponse{User: user}

	result, err := h.reconcile.Reconcile(c, user.ID, user.Email)
	if err != nil {
		logger.FromGin(c).WithError(err).Warn("Invite reconciliation failed")
	} else {
		resp.Reconciled = result
	}

	membership, err := h.guard.ActiveOrg(c, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if membership != nil {
		org, err := h.orgs.GetCurrent(membership)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Organization = org

		dsos, err := h.dsos.ListForUser(membership.OrgID, user.ID, false)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.DsoCount = len(dsos)
	}

	c.JSON(http.StatusOK, resp)
}
