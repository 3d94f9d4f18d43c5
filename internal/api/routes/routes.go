package routes

import (
	"fmt"
	"time"

	"cs-crm-backend/internal/api/handlers"
	"cs-crm-backend/internal/api/middleware"
	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/config"
	"cs-crm-backend/internal/metrics"
	"cs-crm-backend/internal/notify"
	"cs-crm-backend/internal/repository"
	"cs-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// fallbackRatePerMinute caps requests per client IP that authenticate with a caller-supplied user id
const fallbackRatePerMinute = 120

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Organization  *handlers.OrganizationHandler
	Member        *handlers.MemberHandler
	Invite        *handlers.InviteHandler
	Dso           *handlers.DsoHandler
	DsoAccess     *handlers.DsoAccessHandler
	Me            *handlers.MeHandler
	WorkspaceData *handlers.WorkspaceDataHandler
	Session       *auth.SessionHandler
}

// Limits holds the optional rate limiters; a nil limiter disables that limit
type Limits struct {
	Invites  *middleware.RateLimiter
	Fallback *middleware.RateLimiter
}

// SetupRoutes wires repositories, services and handlers and returns the router.
// Metrics are registered on reg and served from /metrics.
func SetupRoutes(db *gorm.DB, cfg *config.Config, reg *prometheus.Registry) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	collector := metrics.NewAuthzCollector(reg)
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewOrgMemberRepository(db)
	dsoRepo := repository.NewDsoRepository(db)
	accessRepo := repository.NewDsoAccessRepository(db)
	orgInviteRepo := repository.NewOrgInviteRepository(db)
	teamInviteRepo := repository.NewTeamInviteRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	dataTableRepo := repository.NewDataTableRepository(db)

	// Identity and guards
	sessions, err := auth.NewSessionManager(cfg.JWTSecret, cfg.SessionCookieName, cfg.SessionTTL())
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}
	resolver := auth.NewIdentityResolver(sessions, auth.FallbackPolicy{
		Enabled:      cfg.IdentityFallbackEnabled,
		ServiceToken: cfg.ServiceToken,
	}, collector)
	guard := auth.NewGuard(resolver, memberRepo, dsoRepo, accessRepo, collector)

	// Services
	notifier := notify.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	inviteOpts := service.InviteOptions{TTL: cfg.InviteTTL(), AppBaseURL: cfg.AppBaseURL}

	organizationService := service.NewOrganizationService(orgRepo, memberRepo, validate)
	memberService := service.NewMemberService(memberRepo, validate, collector)
	orgInviteService := service.NewOrgInviteService(orgInviteRepo, orgRepo, notifier, validate, inviteOpts)
	teamInviteService := service.NewTeamInviteService(teamInviteRepo, notifier, validate, inviteOpts)
	dsoService := service.NewDsoService(dsoRepo, accessRepo, validate)
	dsoAccessService := service.NewDsoAccessService(dsoRepo, memberRepo, accessRepo, validate, collector)
	reconcileService := service.NewReconcileService(orgInviteRepo, teamInviteRepo, memberRepo, dsoRepo, accessRepo, collector)
	doctorService := service.NewDoctorService(doctorRepo, validate)
	activityService := service.NewActivityService(activityRepo, doctorRepo, validate)
	dataTableService := service.NewDataTableService(dataTableRepo, validate)

	h := &Handlers{
		Organization:  handlers.NewOrganizationHandler(organizationService, guard),
		Member:        handlers.NewMemberHandler(memberService, guard),
		Invite:        handlers.NewInviteHandler(orgInviteService, teamInviteService, guard),
		Dso:           handlers.NewDsoHandler(dsoService, guard),
		DsoAccess:     handlers.NewDsoAccessHandler(dsoAccessService, guard),
		Me:            handlers.NewMeHandler(reconcileService, organizationService, dsoService, guard),
		WorkspaceData: handlers.NewWorkspaceDataHandler(doctorService, activityService, dataTableService, guard),
		Session:       auth.NewSessionHandler(sessions, guard),
	}

	var limits Limits
	if cfg.InviteRatePerMinute > 0 {
		limits.Invites = middleware.NewRateLimiter(cfg.InviteRatePerMinute, time.Minute)
	}
	if cfg.IdentityFallbackEnabled {
		limits.Fallback = middleware.NewRateLimiter(fallbackRatePerMinute, time.Minute)
	}

	// Health check routes
	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterAPI(router.Group("/api/v1"), h, guard, limits)

	return router, nil
}

// RegisterAPI mounts every /api/v1 route on v1. Authorization happens inside
// the handlers; the group only resolves an optional session up front.
func RegisterAPI(v1 *gin.RouterGroup, h *Handlers, guard *auth.Guard, limits Limits) {
	v1.Use(guard.OptionalSession())
	if limits.Fallback != nil {
		v1.Use(middleware.RateLimit(limits.Fallback, fallbackKey))
	}

	inviteLimit := func(c *gin.Context) { c.Next() }
	if limits.Invites != nil {
		inviteLimit = middleware.RateLimit(limits.Invites, sessionUserKey)
	}

	authGroup := v1.Group("/auth")
	{
		authGroup.GET("/session", h.Session.Validate)
		authGroup.POST("/logout", h.Session.Logout)
	}

	me := v1.Group("/me")
	{
		me.GET("", h.Me.GetMe)
		me.POST("/reconcile", h.Me.Reconcile)
	}

	orgs := v1.Group("/orgs")
	{
		orgs.POST("", h.Organization.CreateOrganization)
		orgs.GET("/current", h.Organization.GetCurrentOrganization)
		orgs.GET("/:orgId", h.Organization.GetOrganization)
		orgs.PATCH("/:orgId", h.Organization.UpdateOrganization)

		orgs.GET("/:orgId/members", h.Member.ListMembers)
		orgs.PATCH("/:orgId/members", h.Member.UpdateMemberRole)
		orgs.DELETE("/:orgId/members", h.Member.RemoveMember)

		orgs.POST("/:orgId/invites", inviteLimit, h.Invite.CreateOrgInvite)
		orgs.GET("/:orgId/invites", h.Invite.ListOrgInvites)
		orgs.DELETE("/:orgId/invites/:inviteId", h.Invite.CancelOrgInvite)

		orgs.GET("/:orgId/dso-access", h.DsoAccess.ListAccess)
		orgs.POST("/:orgId/dso-access", h.DsoAccess.GrantAccess)
		orgs.PATCH("/:orgId/dso-access", h.DsoAccess.UpdateAccess)
		orgs.DELETE("/:orgId/dso-access", h.DsoAccess.RevokeAccess)
	}

	dsos := v1.Group("/dsos")
	{
		dsos.POST("", h.Dso.CreateDso)
		dsos.GET("", h.Dso.ListDsos)
		dsos.GET("/:dsoId", h.Dso.GetDso)
		dsos.PATCH("/:dsoId", h.Dso.UpdateDso)
		dsos.POST("/:dsoId/archive", h.Dso.ArchiveDso)
		dsos.POST("/:dsoId/unarchive", h.Dso.UnarchiveDso)

		dsos.POST("/:dsoId/invites", inviteLimit, h.Invite.CreateTeamInvite)
		dsos.GET("/:dsoId/invites", h.Invite.ListTeamInvites)
		dsos.DELETE("/:dsoId/invites/:inviteId", h.Invite.CancelTeamInvite)

		dsos.GET("/:dsoId/doctors", h.WorkspaceData.ListDoctors)
		dsos.POST("/:dsoId/doctors", h.WorkspaceData.CreateDoctor)
		dsos.DELETE("/:dsoId/doctors/:doctorId", h.WorkspaceData.DeleteDoctor)
		dsos.GET("/:dsoId/activities", h.WorkspaceData.ListActivities)
		dsos.POST("/:dsoId/activities", h.WorkspaceData.CreateActivity)
		dsos.GET("/:dsoId/data-tables", h.WorkspaceData.ListDataTables)
		dsos.POST("/:dsoId/data-tables", h.WorkspaceData.CreateDataTable)
	}
}

// sessionUserKey limits per signed-in user
func sessionUserKey(c *gin.Context) string {
	userID, _ := auth.GetUserID(c)
	return userID
}

// fallbackKey limits per client IP, but only requests without a session
func fallbackKey(c *gin.Context) string {
	if _, ok := auth.GetIdentity(c); ok {
		return ""
	}
	return middleware.ByClientIP(c)
}
