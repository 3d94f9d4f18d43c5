package handlers

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceDataHandler serves the doctors, activities and data tables of a workspace.
// Reads accept a ?user_id= identity and writes a body user_id when fallback is enabled.
type WorkspaceDataHandler struct {
	doctors    service.DoctorServiceInterface
	activities service.ActivityServiceInterface
	tables     service.DataTableServiceInterface
	guard      *auth.Guard
}

// NewWorkspaceDataHandler creates a new workspace data handler
func NewWorkspaceDataHandler(
	doctors service.DoctorServiceInterface,
	activities service.ActivityServiceInterface,
	tables service.DataTableServiceInterface,
	guard *auth.Guard,
) *WorkspaceDataHandler {
	return &WorkspaceDataHandler{doctors: doctors, activities: activities, tables: tables, guard: guard}
}

type guardFunc func(c *gin.Context, dsoID uuid.UUID, requireWrite bool, body auth.BodyIdentity) (*auth.AccessContext, *auth.Denial)

// authorizeRead checks read access on the path workspace
func authorizeRead(c *gin.Context, guard guardFunc) (*auth.AccessContext, bool) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return nil, false
	}
	access, denial := guard(c, dsoID, false, nil)
	if denial != nil {
		auth.Abort(c, denial)
		return nil, false
	}
	return access, true
}

// authorizeWrite binds the body, then checks write access with the body as a
// possible identity source. Authorization is answered before a bad body.
func authorizeWrite(c *gin.Context, guard guardFunc, req auth.BodyIdentity) (*auth.AccessContext, bool) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return nil, false
	}

	bindErr := c.ShouldBindJSON(req)
	var body auth.BodyIdentity
	if bindErr == nil {
		body = req
	}

	access, denial := guard(c, dsoID, true, body)
	if denial != nil {
		auth.Abort(c, denial)
		return nil, false
	}
	if bindErr != nil {
		badRequest(c, "Invalid request body", bindErr)
		return nil, false
	}
	return access, true
}

// ListDoctors handles GET /api/v1/dsos/:dsoId/doctors
// @Summary List doctors of a workspace
// @Tags doctors
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param user_id query string false "Caller identity when no session is present"
// @Success 200 {object} service.DoctorListResponse "Doctors"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security SessionCookie
// @Router /dsos/{dsoId}/doctors [get]
func (h *WorkspaceDataHandler) ListDoctors(c *gin.Context) {
	access, ok := authorizeRead(c, h.guard.RequireOrgDsoAccess)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	resp, err := h.doctors.List(access.Dso.ID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateDoctor handles POST /api/v1/dsos/:dsoId/doctors
// @Summary Add a doctor to a workspace
// @Tags doctors
// @Accept json
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param doctor body service.CreateDoctorRequest true "Doctor data"
// @Success 201 {object} models.Doctor "Doctor created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Write access required"
// @Security SessionCookie
// @Router /dsos/{dsoId}/doctors [post]
func (h *WorkspaceDataHandler) CreateDoctor(c *gin.Context) {
	var req service.CreateDoctorRequest
	access, ok := authorizeWrite(c, h.guard.RequireOrgDsoAccess, &req)
	if !ok {
		return
	}

	doctor, err := h.doctors.Create(access.Dso.ID, access.UserID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

// DeleteDoctor handles DELETE /api/v1/dsos/:dsoId/doctors/:doctorId
// @Summary Delete a doctor
// @Tags doctors
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param doctorId path string true "Doctor ID (UUID)"
// @Success 200 {object} map[string]interface{} "Doctor deleted"
// @Failure 403 {object} ErrorResponse "Write access required"
// @Failure 404 {object} ErrorResponse "Doctor not found"
// @Security SessionCookie
// @Router /dsos/{dsoId}/doctors/{doctorId} [delete]
func (h *WorkspaceDataHandler) DeleteDoctor(c *gin.Context) {
	dsoID, ok := uuidParam(c, "dsoId", "workspace")
	if !ok {
		return
	}
	doctorID, ok := uuidParam(c, "doctorId", "doctor")
	if !ok {
		return
	}
	if _, denial := h.guard.RequireOrgDsoAccess(c, dsoID, true, nil); denial != nil {
		auth.Abort(c, denial)
		return
	}

	if err := h.doctors.Delete(dsoID, doctorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// ListActivities handles GET /api/v1/dsos/:dsoId/activities
// @Summary List activities of a workspace
// @Tags activities
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ActivityListResponse "Activities, newest first"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Security SessionCookie
// @Router /dsos/{dsoId}/activities [get]
func (h *WorkspaceDataHandler) ListActivities(c *gin.Context) {
	access, ok := authorizeRead(c, h.guard.RequireOrgDsoAccess)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	resp, err := h.activities.List(access.Dso.ID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateActivity handles POST /api/v1/dsos/:dsoId/activities
// @Summary Log an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} models.Activity "Activity logged"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Write access required"
// @Security SessionCookie
// @Router /dsos/{dsoId}/activities [post]
func (h *WorkspaceDataHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	access, ok := authorizeWrite(c, h.guard.RequireOrgDsoAccess, &req)
	if !ok {
		return
	}

	activity, err := h.activities.Create(access.Dso.ID, access.UserID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// ListDataTables handles GET /api/v1/dsos/:dsoId/data-tables
// @Summary List data tables of a workspace
// @Tags data-tables
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Success 200 {array} models.DataTable "Data tables"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Security SessionCookie
// @Router /dsos/{dsoId}/data-tables [get]
func (h *WorkspaceDataHandler) ListDataTables(c *gin.Context) {
	access, ok := authorizeRead(c, h.guard.RequireDsoAccessWithFallback)
	if !ok {
		return
	}

	tables, err := h.tables.List(access.Dso.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}

// CreateDataTable handles POST /api/v1/dsos/:dsoId/data-tables
// @Summary Create a data table
// @Tags data-tables
// @Accept json
// @Produce json
// @Param dsoId path string true "Workspace ID (UUID)"
// @Param table body service.CreateDataTableRequest true "Table definition"
// @Success 201 {object} models.DataTable "Data table created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Write access required"
// @Failure 409 {object} ErrorResponse "Name already used in this workspace"
// @Security SessionCookie
// @Router /dsos/{dsoId}/data-tables [post]
func (h *WorkspaceDataHandler) CreateDataTable(c *gin.Context) {
	var req service.CreateDataTableRequest
	access, ok := authorizeWrite(c, h.guard.RequireDsoAccessWithFallback, &req)
	if !ok {
		return
	}

	table, err := h.tables.Create(access.Dso.ID, access.UserID(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}
