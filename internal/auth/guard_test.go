package auth

import (
	"errors"
	"net/http"
	"testing"

	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/mocks"
	"cs-crm-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type decisionLog struct {
	entries map[string][]int
}

func (d *decisionLog) RecordDecision(guard string, status int) {
	if d.entries == nil {
		d.entries = map[string][]int{}
	}
	d.entries[guard] = append(d.entries[guard], status)
}

// GuardTestSuite covers the ordering and outcomes of every guard
type GuardTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	members    *mocks.MockOrgMemberRepositoryInterface
	dsos       *mocks.MockDsoRepositoryInterface
	access     *mocks.MockDsoAccessRepositoryInterface
	sessions   *SessionManager
	decisions  *decisionLog
	guard      *Guard
	orgA       uuid.UUID
	orgB       uuid.UUID
	clinic     *models.Dso
	foreignDso *models.Dso
}

func (s *GuardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.members = mocks.NewMockOrgMemberRepositoryInterface(s.ctrl)
	s.dsos = mocks.NewMockDsoRepositoryInterface(s.ctrl)
	s.access = mocks.NewMockDsoAccessRepositoryInterface(s.ctrl)
	s.sessions = newTestSessions(s.T())
	s.decisions = &decisionLog{}

	resolver := NewIdentityResolver(s.sessions, FallbackPolicy{Enabled: true}, nil)
	s.guard = NewGuard(resolver, s.members, s.dsos, s.access, s.decisions)

	s.orgA = uuid.New()
	s.orgB = uuid.New()
	s.clinic = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Clinic1", OrgID: &s.orgA}
	s.foreignDso = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Clinic2", OrgID: &s.orgB}
}

func (s *GuardTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GuardTestSuite) member(userID string, orgID uuid.UUID, role models.OrgRole) {
	s.members.EXPECT().CheckOrgMembership(userID, orgID).
		Return(&repository.MembershipCheck{IsMember: true, Role: role}, nil)
}

func (s *GuardTestSuite) nonMember(userID string, orgID uuid.UUID) {
	s.members.EXPECT().CheckOrgMembership(userID, orgID).Return(&repository.MembershipCheck{}, nil)
}

func (s *GuardTestSuite) grant(userID string, dsoID uuid.UUID, role models.DsoRole) {
	s.access.EXPECT().CheckDsoAccess(userID, dsoID).
		Return(&repository.AccessCheck{HasAccess: true, Role: role}, nil)
}

func (s *GuardTestSuite) TestRequireAuth() {
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "alice"))
	user, denial := s.guard.RequireAuth(c)
	s.Require().Nil(denial)
	s.Equal("alice", user.ID)
	s.Equal("alice", c.GetString("user_id"))

	c, _ = newTestContext(http.MethodGet, "/?user_id=eve", nil)
	_, denial = s.guard.RequireAuth(c)
	s.Require().NotNil(denial)
	s.Equal(http.StatusUnauthorized, denial.Status)
	s.Equal(MsgUnauthorized, denial.Message)
}

func (s *GuardTestSuite) TestRequireAuthWithFallback_SessionWins() {
	c, _ := newTestContext(http.MethodGet, "/?user_id=mallory", bearer(s.T(), s.sessions, "alice"))
	user, denial := s.guard.RequireAuthWithFallback(c)
	s.Require().Nil(denial)
	s.Equal("alice", user.ID)
}

func (s *GuardTestSuite) TestRequireAuthWithFallback_UnverifiedQueryIdentity() {
	c, _ := newTestContext(http.MethodGet, "/?user_id=eve", nil)
	user, denial := s.guard.RequireAuthWithFallback(c)
	s.Require().Nil(denial)
	s.Equal("eve", user.ID)
	s.Equal(SourceQuery, user.Source)
	s.Equal([]int{http.StatusOK}, s.decisions.entries[guardAuthFallback])
}

func (s *GuardTestSuite) TestRequireOrgDsoAccess_GrantInForeignOrgIsUnreachable() {
	// bob holds an admin grant on Clinic1 but is not a member of its org
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "bob"))
	s.dsos.EXPECT().GetByID(s.clinic.ID).Return(s.clinic, nil)
	s.nonMember("bob", s.orgA)

	_, denial := s.guard.RequireOrgDsoAccess(c, s.clinic.ID, false, nil)
	s.Require().NotNil(denial)
	s.Equal(http.StatusForbidden, denial.Status)
	s.Equal(MsgNotOrgMember, denial.Message)
}

func (s *GuardTestSuite) TestRequireDsoAccess_IsTwoTier() {
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "bob"))
	s.dsos.EXPECT().GetByID(s.foreignDso.ID).Return(s.foreignDso, nil)
	s.nonMember("bob", s.orgB)

	_, denial := s.guard.RequireDsoAccess(c, s.foreignDso.ID, false)
	s.Require().NotNil(denial)
	s.Equal(MsgNotOrgMember, denial.Message)
}

func (s *GuardTestSuite) TestRequireDsoAccess_IgnoresFallbackIdentity() {
	c, _ := newTestContext(http.MethodGet, "/?user_id=eve", nil)
	_, denial := s.guard.RequireDsoAccess(c, s.clinic.ID, false)
	s.Require().NotNil(denial)
	s.Equal(http.StatusUnauthorized, denial.Status)
}

func (s *GuardTestSuite) TestRequireOrgDsoAccess_NotFoundBeforeMembership() {
	missing := uuid.New()
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "bob"))
	s.dsos.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	_, denial := s.guard.RequireOrgDsoAccess(c, missing, true, nil)
	s.Require().NotNil(denial)
	s.Equal(http.StatusNotFound, denial.Status)
	s.Equal(MsgWorkspaceNotFound, denial.Message)
}

func (s *GuardTestSuite) TestRequireOrgDsoAccess_UnauthenticatedFirst() {
	c, _ := newTestContext(http.MethodGet, "/", nil)
	_, denial := s.guard.RequireOrgDsoAccess(c, uuid.New(), true, nil)
	s.Require().NotNil(denial)
	s.Equal(http.StatusUnauthorized, denial.Status)
}

func (s *GuardTestSuite) TestRequireOrgDsoAccess_NoGrant() {
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "carol"))
	s.dsos.EXPECT().GetByID(s.clinic.ID).Return(s.clinic, nil)
	s.member("carol", s.orgA, models.OrgRoleMember)
	s.access.EXPECT().CheckDsoAccess("carol", s.clinic.ID).Return(&repository.AccessCheck{}, nil)

	_, denial := s.guard.RequireOrgDsoAccess(c, s.clinic.ID, false, nil)
	s.Require().NotNil(denial)
	s.Equal(http.StatusForbidden, denial.Status)
	s.Equal(MsgWorkspaceDenied, denial.Message)
}

func (s *GuardTestSuite) TestWriteGating() {
	cases := []struct {
		role    models.DsoRole
		allowed bool
	}{
		{models.DsoRoleViewer, false},
		{models.DsoRoleManager, true},
		{models.DsoRoleAdmin, true},
	}

	for _, tc := range cases {
		c, _ := newTestContext(http.MethodPost, "/", bearer(s.T(), s.sessions, "dave"))
		s.dsos.EXPECT().GetByID(s.clinic.ID).Return(s.clinic, nil)
		s.member("dave", s.orgA, models.OrgRoleMember)
		s.grant("dave", s.clinic.ID, tc.role)

		result, denial := s.guard.RequireDsoAccess(c, s.clinic.ID, true)
		if tc.allowed {
			s.Require().Nil(denial, string(tc.role))
			s.Equal(tc.role, result.DsoRole)
			s.Equal(s.orgA, result.OrgID)
		} else {
			s.Require().NotNil(denial, string(tc.role))
			s.Equal(http.StatusForbidden, denial.Status)
			s.Equal(MsgWriteRequired, denial.Message)
		}
	}
}

func (s *GuardTestSuite) TestViewerCanRead() {
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "dave"))
	s.dsos.EXPECT().GetByID(s.clinic.ID).Return(s.clinic, nil)
	s.member("dave", s.orgA, models.OrgRoleMember)
	s.grant("dave", s.clinic.ID, models.DsoRoleViewer)

	result, denial := s.guard.RequireOrgDsoAccess(c, s.clinic.ID, false, nil)
	s.Require().Nil(denial)
	s.Equal("dave", result.UserID())
	s.Equal(models.OrgRoleMember, result.OrgRole)
	s.Equal(s.clinic, result.Dso)
}

func (s *GuardTestSuite) TestRequireDsoAccessWithFallback_BodyIdentity() {
	c, _ := newTestContext(http.MethodPost, "/", nil)
	s.dsos.EXPECT().GetByID(s.clinic.ID).Return(s.clinic, nil)
	s.member("svc", s.orgA, models.OrgRoleMember)
	s.grant("svc", s.clinic.ID, models.DsoRoleManager)

	result, denial := s.guard.RequireDsoAccessWithFallback(c, s.clinic.ID, true, &FallbackBody{UserID: "svc"})
	s.Require().Nil(denial)
	s.Equal(SourceBody, result.User.Source)
}

func (s *GuardTestSuite) TestLegacyDsoWithoutOrgUsesGrantOnly() {
	legacy := &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Legacy"}
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "erin"))
	s.dsos.EXPECT().GetByID(legacy.ID).Return(legacy, nil)
	s.grant("erin", legacy.ID, models.DsoRoleViewer)

	result, denial := s.guard.RequireOrgDsoAccess(c, legacy.ID, false, nil)
	s.Require().Nil(denial)
	s.Equal(uuid.Nil, result.OrgID)
}

func (s *GuardTestSuite) TestStoreFailureIs500() {
	c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "erin"))
	s.dsos.EXPECT().GetByID(s.clinic.ID).Return(nil, errors.New("connection reset"))

	_, denial := s.guard.RequireOrgDsoAccess(c, s.clinic.ID, false, nil)
	s.Require().NotNil(denial)
	s.Equal(http.StatusInternalServerError, denial.Status)
	s.Equal(MsgInternal, denial.Message)
	s.Error(denial.Err)
}

func (s *GuardTestSuite) TestRequireOrgAccess() {
	s.Run("member may read", func() {
		c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "mia"))
		s.member("mia", s.orgA, models.OrgRoleMember)
		result, denial := s.guard.RequireOrgAccess(c, s.orgA, false)
		s.Require().Nil(denial)
		s.Equal(models.OrgRoleMember, result.OrgRole)
	})

	s.Run("member may not manage", func() {
		c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "mia"))
		s.member("mia", s.orgA, models.OrgRoleMember)
		_, denial := s.guard.RequireOrgAccess(c, s.orgA, true)
		s.Require().NotNil(denial)
		s.Equal(http.StatusForbidden, denial.Status)
		s.Equal(MsgOwnerAdminRequired, denial.Message)
	})

	s.Run("admin may manage", func() {
		c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "ada"))
		s.member("ada", s.orgA, models.OrgRoleAdmin)
		_, denial := s.guard.RequireOrgAccess(c, s.orgA, true)
		s.Nil(denial)
	})

	s.Run("non-member", func() {
		c, _ := newTestContext(http.MethodGet, "/", bearer(s.T(), s.sessions, "zed"))
		s.nonMember("zed", s.orgA)
		_, denial := s.guard.RequireOrgAccess(c, s.orgA, false)
		s.Require().NotNil(denial)
		s.Equal(MsgNotOrgMember, denial.Message)
	})

	s.Run("query identity is not accepted", func() {
		c, _ := newTestContext(http.MethodGet, "/?user_id=ada", nil)
		_, denial := s.guard.RequireOrgAccess(c, s.orgA, false)
		s.Require().NotNil(denial)
		s.Equal(http.StatusUnauthorized, denial.Status)
	})
}

func (s *GuardTestSuite) TestActiveOrgIsLookedUpOncePerRequest() {
	c, _ := newTestContext(http.MethodGet, "/", nil)
	membership := &models.OrgMember{OrgID: s.orgA, UserID: "alice", Role: models.OrgRoleOwner}
	s.members.EXPECT().GetUserOrg("alice").Return(membership, nil).Times(1)

	first, err := s.guard.ActiveOrg(c, "alice")
	s.Require().NoError(err)
	second, err := s.guard.ActiveOrg(c, "alice")
	s.Require().NoError(err)
	s.Same(first, second)
}

func (s *GuardTestSuite) TestActiveOrgNone() {
	c, _ := newTestContext(http.MethodGet, "/", nil)
	s.members.EXPECT().GetUserOrg("nobody").Return(nil, nil).Times(1)

	member, err := s.guard.ActiveOrg(c, "nobody")
	s.NoError(err)
	s.Nil(member)
	member, err = s.guard.ActiveOrg(c, "nobody")
	s.NoError(err)
	s.Nil(member)
}

func (s *GuardTestSuite) TestAbortWritesErrorBody() {
	c, recorder := newTestContext(http.MethodGet, "/", nil)
	Abort(c, &Denial{Status: http.StatusForbidden, Message: MsgWriteRequired})

	s.Equal(http.StatusForbidden, recorder.Code)
	s.JSONEq(`{"error":"Write access required"}`, recorder.Body.String())
	s.True(c.IsAborted())
}

func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}
