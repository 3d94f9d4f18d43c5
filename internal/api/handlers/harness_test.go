package handlers_test

import (
	"testing"
	"time"

	"cs-crm-backend/internal/api/handlers"
	"cs-crm-backend/internal/api/routes"
	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/mocks"
	"cs-crm-backend/internal/repository"
	"cs-crm-backend/internal/service"
	"cs-crm-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "handler-test-secret-0123456789abcdef"

// apiHarness serves the real routes, handlers and services over mocked repositories
type apiHarness struct {
	ctrl        *gomock.Controller
	orgs        *mocks.MockOrganizationRepositoryInterface
	members     *mocks.MockOrgMemberRepositoryInterface
	dsos        *mocks.MockDsoRepositoryInterface
	access      *mocks.MockDsoAccessRepositoryInterface
	orgInvites  *mocks.MockOrgInviteRepositoryInterface
	teamInvites *mocks.MockTeamInviteRepositoryInterface
	doctors     *mocks.MockDoctorRepositoryInterface
	activities  *mocks.MockActivityRepositoryInterface
	tables      *mocks.MockDataTableRepositoryInterface
	sessions    *auth.SessionManager
	http        *testutils.HTTPTestSuite
}

func newHarness(t *testing.T, policy auth.FallbackPolicy) *apiHarness {
	t.Helper()
	return newLimitedHarness(t, policy, routes.Limits{})
}

// newLimitedHarness is newHarness with the given rate limiters mounted
func newLimitedHarness(t *testing.T, policy auth.FallbackPolicy, limits routes.Limits) *apiHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &apiHarness{
		ctrl:        ctrl,
		orgs:        mocks.NewMockOrganizationRepositoryInterface(ctrl),
		members:     mocks.NewMockOrgMemberRepositoryInterface(ctrl),
		dsos:        mocks.NewMockDsoRepositoryInterface(ctrl),
		access:      mocks.NewMockDsoAccessRepositoryInterface(ctrl),
		orgInvites:  mocks.NewMockOrgInviteRepositoryInterface(ctrl),
		teamInvites: mocks.NewMockTeamInviteRepositoryInterface(ctrl),
		doctors:     mocks.NewMockDoctorRepositoryInterface(ctrl),
		activities:  mocks.NewMockActivityRepositoryInterface(ctrl),
		tables:      mocks.NewMockDataTableRepositoryInterface(ctrl),
		http:        testutils.SetupHTTPTest(),
	}

	sessions, err := auth.NewSessionManager(testSecret, "crm_session", time.Hour)
	require.NoError(t, err)
	h.sessions = sessions

	validate := validator.New()
	resolver := auth.NewIdentityResolver(sessions, policy, nil)
	guard := auth.NewGuard(resolver, h.members, h.dsos, h.access, nil)
	opts := service.InviteOptions{TTL: 72 * time.Hour, AppBaseURL: "http://localhost:3000"}

	orgService := service.NewOrganizationService(h.orgs, h.members, validate)
	dsoService := service.NewDsoService(h.dsos, h.access, validate)

	routes.RegisterAPI(h.http.Router.Group("/api/v1"), &routes.Handlers{
		Organization: handlers.NewOrganizationHandler(orgService, guard),
		Member:       handlers.NewMemberHandler(service.NewMemberService(h.members, validate, nil), guard),
		Invite: handlers.NewInviteHandler(
			service.NewOrgInviteService(h.orgInvites, h.orgs, nil, validate, opts),
			service.NewTeamInviteService(h.teamInvites, nil, validate, opts),
			guard,
		),
		Dso:       handlers.NewDsoHandler(dsoService, guard),
		DsoAccess: handlers.NewDsoAccessHandler(service.NewDsoAccessService(h.dsos, h.members, h.access, validate, nil), guard),
		Me: handlers.NewMeHandler(
			service.NewReconcileService(h.orgInvites, h.teamInvites, h.members, h.dsos, h.access, nil),
			orgService, dsoService, guard,
		),
		WorkspaceData: handlers.NewWorkspaceDataHandler(
			service.NewDoctorService(h.doctors, validate),
			service.NewActivityService(h.activities, h.doctors, validate),
			service.NewDataTableService(h.tables, validate),
			guard,
		),
		Session: auth.NewSessionHandler(sessions, guard),
	}, guard, limits)

	return h
}

// as returns the Authorization header of a session for userID
func (h *apiHarness) as(t *testing.T, userID, email string) map[string]string {
	t.Helper()
	token, err := h.sessions.Issue(userID, email)
	require.NoError(t, err)
	return testutils.Bearer(token)
}

func (h *apiHarness) member(userID string, orgID uuid.UUID, role models.OrgRole) {
	h.members.EXPECT().CheckOrgMembership(userID, orgID).
		Return(&repository.MembershipCheck{IsMember: true, Role: role}, nil)
}

func (h *apiHarness) nonMember(userID string, orgID uuid.UUID) {
	h.members.EXPECT().CheckOrgMembership(userID, orgID).Return(&repository.MembershipCheck{}, nil)
}

func (h *apiHarness) grant(userID string, dsoID uuid.UUID, role models.DsoRole) {
	h.access.EXPECT().CheckDsoAccess(userID, dsoID).
		Return(&repository.AccessCheck{HasAccess: true, Role: role}, nil)
}

func (h *apiHarness) workspace(dso *models.Dso) {
	h.dsos.EXPECT().GetByID(dso.ID).Return(dso, nil)
}

func newDso(orgID *uuid.UUID, name string) *models.Dso {
	return testutils.NewDsoFactory().Create(orgID, name)
}

var repositoryAccessNone = repository.AccessCheck{}
