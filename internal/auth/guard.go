package auth

import (
	"errors"
	"net/http"

	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/logger"
	"cs-crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client-visible denial messages
const (
	MsgUnauthorized       = "Unauthorized"
	MsgWorkspaceNotFound  = "Workspace not found"
	MsgNotOrgMember       = "Not a member of this organization"
	MsgWorkspaceDenied    = "Access denied to this workspace"
	MsgWriteRequired      = "Write access required"
	MsgOwnerAdminRequired = "Owner or admin access required"
	MsgInternal           = "Internal server error"
)

// Guard names used for logs and metrics
const (
	guardAuth         = "auth"
	guardAuthFallback = "auth_fallback"
	guardDsoAccess    = "dso_access"
	guardDsoFallback  = "dso_access_fallback"
	guardOrgDsoAccess = "org_dso_access"
	guardOrgAccess    = "org_access"
)

const activeOrgKey = "active_org"

// Denial is the terminal outcome of a guard. Handlers pass it to Abort unchanged.
type Denial struct {
	Status  int
	Message string
	Err     error
}

func (d *Denial) Error() string {
	return d.Message
}

// AccessContext is returned by guards on success
type AccessContext struct {
	User    *Identity
	OrgID   uuid.UUID
	OrgRole models.OrgRole
	Dso     *models.Dso
	DsoRole models.DsoRole
}

// UserID returns the id of the authorized caller
func (a *AccessContext) UserID() string {
	return a.User.ID
}

// DecisionRecorder counts guard outcomes
type DecisionRecorder interface {
	RecordDecision(guard string, status int)
}

// Guard composes identity resolution with the membership and grant stores.
// Every DSO-scoped guard performs the two-tier check: org membership first,
// then the per-DSO grant.
type Guard struct {
	identity *IdentityResolver
	members  repository.OrgMemberRepositoryInterface
	dsos     repository.DsoRepositoryInterface
	access   repository.DsoAccessRepositoryInterface
	recorder DecisionRecorder
}

// NewGuard creates a new guard. recorder may be nil.
func NewGuard(
	identity *IdentityResolver,
	members repository.OrgMemberRepositoryInterface,
	dsos repository.DsoRepositoryInterface,
	access repository.DsoAccessRepositoryInterface,
	recorder DecisionRecorder,
) *Guard {
	return &Guard{identity: identity, members: members, dsos: dsos, access: access, recorder: recorder}
}

// Abort writes the denial as {"error": message} and stops the handler chain
func Abort(c *gin.Context, d *Denial) {
	c.AbortWithStatusJSON(d.Status, gin.H{"error": d.Message})
}

// RequireAuth authenticates from the session only
func (g *Guard) RequireAuth(c *gin.Context) (*Identity, *Denial) {
	return g.authenticate(c, guardAuth, SessionOnly, nil)
}

// RequireAuthWithFallback authenticates from the session, else from ?user_id=
func (g *Guard) RequireAuthWithFallback(c *gin.Context) (*Identity, *Denial) {
	return g.authenticate(c, guardAuthFallback, QueryFallback, nil)
}

// RequireDsoAccess authorizes the session user on dsoID
func (g *Guard) RequireDsoAccess(c *gin.Context, dsoID uuid.UUID, requireWrite bool) (*AccessContext, *Denial) {
	return g.dsoAccess(c, guardDsoAccess, SessionOnly, dsoID, requireWrite, nil)
}

// RequireDsoAccessWithFallback authorizes on dsoID with session, query and body identities
func (g *Guard) RequireDsoAccessWithFallback(c *gin.Context, dsoID uuid.UUID, requireWrite bool, body BodyIdentity) (*AccessContext, *Denial) {
	return g.dsoAccess(c, guardDsoFallback, FullFallback, dsoID, requireWrite, body)
}

// RequireOrgDsoAccess authorizes on dsoID with session, query and body identities
func (g *Guard) RequireOrgDsoAccess(c *gin.Context, dsoID uuid.UUID, requireWrite bool, body BodyIdentity) (*AccessContext, *Denial) {
	return g.dsoAccess(c, guardOrgDsoAccess, FullFallback, dsoID, requireWrite, body)
}

// RequireOrgAccess authorizes the session user on orgID, optionally requiring owner or admin
func (g *Guard) RequireOrgAccess(c *gin.Context, orgID uuid.UUID, requireOwnerOrAdmin bool) (*AccessContext, *Denial) {
	user, denial := g.authenticate(c, guardOrgAccess, SessionOnly, nil)
	if denial != nil {
		return nil, denial
	}

	membership, err := g.members.CheckOrgMembership(user.ID, orgID)
	if err != nil {
		return nil, g.deny(c, guardOrgAccess, http.StatusInternalServerError, MsgInternal, err)
	}
	if !membership.IsMember {
		return nil, g.deny(c, guardOrgAccess, http.StatusForbidden, MsgNotOrgMember, nil)
	}
	if requireOwnerOrAdmin && !membership.Role.CanManage() {
		return nil, g.deny(c, guardOrgAccess, http.StatusForbidden, MsgOwnerAdminRequired, nil)
	}

	g.allow(guardOrgAccess)
	return &AccessContext{User: user, OrgID: orgID, OrgRole: membership.Role}, nil
}

// ActiveOrg returns the caller's organization membership, or nil when the user has
// none. The lookup is done once per request and kept on the gin context.
func (g *Guard) ActiveOrg(c *gin.Context, userID string) (*models.OrgMember, error) {
	if cached, ok := c.Get(activeOrgKey); ok {
		if member, ok := cached.(*models.OrgMember); ok && (member == nil || member.UserID == userID) {
			return member, nil
		}
	}
	member, err := g.members.GetUserOrg(userID)
	if err != nil {
		return nil, err
	}
	c.Set(activeOrgKey, member)
	return member, nil
}

func (g *Guard) authenticate(c *gin.Context, guard string, mode ResolveMode, body BodyIdentity) (*Identity, *Denial) {
	user, err := g.identity.Resolve(c, mode, body)
	if err != nil {
		return nil, g.deny(c, guard, http.StatusUnauthorized, MsgUnauthorized, nil)
	}
	c.Set(logger.UserIDKey, user.ID)
	if guard == guardAuth || guard == guardAuthFallback {
		g.allow(guard)
	}
	return user, nil
}

// dsoAccess runs identity, then DSO existence, then org membership, then the
// grant, then the write check. The order decides which denial a caller sees.
func (g *Guard) dsoAccess(c *gin.Context, guard string, mode ResolveMode, dsoID uuid.UUID, requireWrite bool, body BodyIdentity) (*AccessContext, *Denial) {
	user, denial := g.authenticate(c, guard, mode, body)
	if denial != nil {
		return nil, denial
	}

	dso, err := g.dsos.GetByID(dsoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, g.deny(c, guard, http.StatusNotFound, MsgWorkspaceNotFound, nil)
		}
		return nil, g.deny(c, guard, http.StatusInternalServerError, MsgInternal, err)
	}

	result := &AccessContext{User: user, Dso: dso}

	if dso.OrgID != nil {
		membership, err := g.members.CheckOrgMembership(user.ID, *dso.OrgID)
		if err != nil {
			return nil, g.deny(c, guard, http.StatusInternalServerError, MsgInternal, err)
		}
		if !membership.IsMember {
			return nil, g.deny(c, guard, http.StatusForbidden, MsgNotOrgMember, nil)
		}
		result.OrgID = *dso.OrgID
		result.OrgRole = membership.Role
	} else {
		logger.FromGin(c).WithField("dso_id", dsoID).Warn("Workspace has no organization, evaluating grant only")
	}

	grant, err := g.access.CheckDsoAccess(user.ID, dsoID)
	if err != nil {
		return nil, g.deny(c, guard, http.StatusInternalServerError, MsgInternal, err)
	}
	if !grant.HasAccess {
		return nil, g.deny(c, guard, http.StatusForbidden, MsgWorkspaceDenied, nil)
	}
	if requireWrite && !grant.Role.HasWriteAccess() {
		return nil, g.deny(c, guard, http.StatusForbidden, MsgWriteRequired, nil)
	}

	result.DsoRole = grant.Role
	g.allow(guard)
	return result, nil
}

func (g *Guard) deny(c *gin.Context, guard string, status int, message string, err error) *Denial {
	log := logger.FromGin(c).WithFields(map[string]interface{}{"guard": guard, "status": status})
	if err != nil {
		log.WithError(err).Error("Authorization lookup failed")
	} else {
		log.Debugf("Request denied: %s", message)
	}
	if g.recorder != nil {
		g.recorder.RecordDecision(guard, status)
	}
	return &Denial{Status: status, Message: message, Err: err}
}

func (g *Guard) allow(guard string) {
	if g.recorder != nil {
		g.recorder.RecordDecision(guard, http.StatusOK)
	}
}
