package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/mocks"
	"cs-crm-backend/internal/repository"
	"cs-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconcileServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockOrgInvites  *mocks.MockOrgInviteRepositoryInterface
	mockTeamInvites *mocks.MockTeamInviteRepositoryInterface
	mockMembers     *mocks.MockOrgMemberRepositoryInterface
	mockDsos        *mocks.MockDsoRepositoryInterface
	mockAccess      *mocks.MockDsoAccessRepositoryInterface
	recorder        *fakeRecorder
	service         *service.ReconcileService

	orgA    uuid.UUID
	orgB    uuid.UUID
	clinic1 *models.Dso
	clinic3 *models.Dso
	other   *models.Dso
}

func (suite *ReconcileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgInvites = mocks.NewMockOrgInviteRepositoryInterface(suite.ctrl)
	suite.mockTeamInvites = mocks.NewMockTeamInviteRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockOrgMemberRepositoryInterface(suite.ctrl)
	suite.mockDsos = mocks.NewMockDsoRepositoryInterface(suite.ctrl)
	suite.mockAccess = mocks.NewMockDsoAccessRepositoryInterface(suite.ctrl)
	suite.recorder = newFakeRecorder()
	suite.service = service.NewReconcileService(
		suite.mockOrgInvites, suite.mockTeamInvites, suite.mockMembers, suite.mockDsos, suite.mockAccess, suite.recorder,
	)

	suite.orgA = uuid.New()
	suite.orgB = uuid.New()
	suite.clinic1 = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Clinic1", OrgID: &suite.orgA}
	suite.clinic3 = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Clinic3", OrgID: &suite.orgA}
	suite.other = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Elsewhere", OrgID: &suite.orgB}
}

func (suite *ReconcileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReconcileServiceTestSuite) orgInvite(orgID uuid.UUID, expiresIn time.Duration) models.OrgInvite {
	return models.OrgInvite{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OrgID:     orgID,
		Email:     "dana@x.com",
		Role:      models.OrgRoleMember,
		InvitedBy: "alice",
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().Add(expiresIn),
	}
}

func (suite *ReconcileServiceTestSuite) teamInvite(dsoID uuid.UUID, inviter string) models.TeamInvite {
	return models.TeamInvite{
		BaseModel: models.BaseModel{ID: uuid.New()},
		DsoID:     dsoID,
		Email:     "dana@x.com",
		Role:      models.DsoRoleViewer,
		InvitedBy: inviter,
		Status:    models.InviteStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// Org invite is accepted, then the team invite replicates across the
// inviter's workspaces inside the same organization only
func (suite *ReconcileServiceTestSuite) TestReconcile_OrgThenTeam() {
	orgInv := suite.orgInvite(suite.orgA, time.Hour)
	teamInv := suite.teamInvite(suite.clinic1.ID, "alice")

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(nil, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.OrgInvite{orgInv}, nil)
	suite.mockMembers.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.OrgMember) error {
		suite.Equal(suite.orgA, m.OrgID)
		suite.Equal(models.OrgRoleMember, m.Role)
		return nil
	})
	suite.mockOrgInvites.EXPECT().UpdateStatus(orgInv.ID, models.InviteStatusAccepted).Return(nil)

	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.TeamInvite{teamInv}, nil)
	suite.mockDsos.EXPECT().GetByID(suite.clinic1.ID).Return(suite.clinic1, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("alice").Return([]uuid.UUID{suite.clinic1.ID, suite.clinic3.ID, suite.other.ID}, nil)
	suite.mockDsos.EXPECT().ListByOrg(suite.orgA).Return([]models.Dso{*suite.clinic1, *suite.clinic3}, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("dana").Return(nil, nil)
	suite.mockAccess.EXPECT().CreateMany(gomock.Any()).DoAndReturn(func(grants []models.DsoAccessGrant) (int64, error) {
		suite.Require().Len(grants, 2)
		suite.Equal(suite.clinic1.ID, grants[0].DsoID)
		suite.Equal(suite.clinic3.ID, grants[1].DsoID)
		for _, g := range grants {
			suite.Equal("dana", g.UserID)
			suite.Equal(models.DsoRoleViewer, g.Role)
		}
		return 2, nil
	})
	suite.mockTeamInvites.EXPECT().UpdateStatus(teamInv.ID, models.InviteStatusAccepted).Return(nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", " Dana@X.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.OrgInvitesAccepted)
	suite.Equal(1, result.TeamInvitesAccepted)
	suite.Equal(2, result.GrantsCreated)
	suite.Equal(1, suite.recorder.invites["org/accepted"])
	suite.Equal(1, suite.recorder.invites["team/accepted"])
}

func (suite *ReconcileServiceTestSuite) TestReconcile_ExistingGrantsExcluded() {
	teamInv := suite.teamInvite(suite.clinic1.ID, "alice")

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(&models.OrgMember{OrgID: suite.orgA, UserID: "dana"}, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return(nil, nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.TeamInvite{teamInv}, nil)
	suite.mockDsos.EXPECT().GetByID(suite.clinic1.ID).Return(suite.clinic1, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("alice").Return([]uuid.UUID{suite.clinic1.ID, suite.clinic3.ID}, nil)
	suite.mockDsos.EXPECT().ListByOrg(suite.orgA).Return([]models.Dso{*suite.clinic1, *suite.clinic3}, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("dana").Return([]uuid.UUID{suite.clinic3.ID}, nil)
	suite.mockAccess.EXPECT().CreateMany(gomock.Any()).DoAndReturn(func(grants []models.DsoAccessGrant) (int64, error) {
		suite.Require().Len(grants, 1)
		suite.Equal(suite.clinic1.ID, grants[0].DsoID)
		return 1, nil
	})
	suite.mockTeamInvites.EXPECT().UpdateStatus(teamInv.ID, models.InviteStatusAccepted).Return(nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.GrantsCreated)
}

// Membership already present: the invite is treated as satisfied
func (suite *ReconcileServiceTestSuite) TestReconcile_DuplicateMembershipStillAccepted() {
	orgInv := suite.orgInvite(suite.orgA, time.Hour)

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(&models.OrgMember{OrgID: suite.orgA, UserID: "dana"}, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.OrgInvite{orgInv}, nil)
	suite.mockMembers.EXPECT().Create(gomock.Any()).Return(repository.ErrUniqueViolation)
	suite.mockOrgInvites.EXPECT().UpdateStatus(orgInv.ID, models.InviteStatusAccepted).Return(nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return(nil, nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.OrgInvitesAccepted)
}

// One organization per user: invites into a second org stay pending
func (suite *ReconcileServiceTestSuite) TestReconcile_OtherOrgLeftPending() {
	orgInv := suite.orgInvite(suite.orgB, time.Hour)
	teamInv := suite.teamInvite(suite.other.ID, "erin")

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(&models.OrgMember{OrgID: suite.orgA, UserID: "dana"}, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.OrgInvite{orgInv}, nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.TeamInvite{teamInv}, nil)
	suite.mockDsos.EXPECT().GetByID(suite.other.ID).Return(suite.other, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("erin").Return([]uuid.UUID{suite.other.ID}, nil)
	suite.mockDsos.EXPECT().ListByOrg(suite.orgB).Return([]models.Dso{*suite.other}, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("dana").Return(nil, nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(0, result.OrgInvitesAccepted)
	suite.Equal(0, result.TeamInvitesAccepted)
	suite.Equal(2, result.Skipped)
	suite.Equal(1, suite.recorder.invites["org/other_org"])
	suite.Equal(1, suite.recorder.invites["team/other_org"])
}

func (suite *ReconcileServiceTestSuite) TestReconcile_ExpiredSkipped() {
	orgInv := suite.orgInvite(suite.orgA, -time.Minute)

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(nil, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.OrgInvite{orgInv}, nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return(nil, nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.Skipped)
	suite.Equal(1, suite.recorder.invites["org/expired"])
}

// A user without an org joins the workspace's org as member
func (suite *ReconcileServiceTestSuite) TestReconcile_TeamInviteJoinsOrganization() {
	teamInv := suite.teamInvite(suite.clinic1.ID, "alice")

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(nil, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return(nil, nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.TeamInvite{teamInv}, nil)
	suite.mockDsos.EXPECT().GetByID(suite.clinic1.ID).Return(suite.clinic1, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("alice").Return([]uuid.UUID{suite.clinic1.ID}, nil)
	suite.mockDsos.EXPECT().ListByOrg(suite.orgA).Return([]models.Dso{*suite.clinic1}, nil)
	suite.mockAccess.EXPECT().ListDsoIDsForUser("dana").Return(nil, nil)
	suite.mockMembers.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.OrgMember) error {
		suite.Equal(suite.orgA, m.OrgID)
		suite.Equal(models.OrgRoleMember, m.Role)
		return nil
	})
	suite.mockAccess.EXPECT().CreateMany(gomock.Len(1)).Return(int64(1), nil)
	suite.mockTeamInvites.EXPECT().UpdateStatus(teamInv.ID, models.InviteStatusAccepted).Return(nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.TeamInvitesAccepted)
}

// One failing invite does not stop the others
func (suite *ReconcileServiceTestSuite) TestReconcile_FailureIsolated() {
	first := suite.orgInvite(suite.orgA, time.Hour)
	second := suite.orgInvite(suite.orgA, time.Hour)

	suite.mockMembers.EXPECT().GetUserOrg("dana").Return(nil, nil)
	suite.mockOrgInvites.EXPECT().ListPendingByEmail("dana@x.com").Return([]models.OrgInvite{first, second}, nil)
	gomock.InOrder(
		suite.mockMembers.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset")),
		suite.mockMembers.EXPECT().Create(gomock.Any()).Return(nil),
	)
	suite.mockOrgInvites.EXPECT().UpdateStatus(second.ID, models.InviteStatusAccepted).Return(nil)
	suite.mockTeamInvites.EXPECT().ListPendingByEmail("dana@x.com").Return(nil, nil)

	result, err := suite.service.Reconcile(context.Background(), "dana", "dana@x.com")

	suite.Require().NoError(err)
	suite.Equal(1, result.Failed)
	suite.Equal(1, result.OrgInvitesAccepted)
}

func (suite *ReconcileServiceTestSuite) TestReconcile_EmptyEmail() {
	result, err := suite.service.Reconcile(context.Background(), "dana", "  ")

	suite.Require().NoError(err)
	suite.Zero(*result)
}

func TestReconcileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileServiceTestSuite))
}
