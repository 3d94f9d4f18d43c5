package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cs-crm-backend/internal/database/models"
	apperrors "cs-crm-backend/internal/errors"
	"cs-crm-backend/internal/mocks"
	"cs-crm-backend/internal/notify"
	"cs-crm-backend/internal/repository"
	"cs-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeNotifier records sent invites
type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.InviteMessage
	err  error
}

func (n *fakeNotifier) SendInvite(_ context.Context, msg notify.InviteMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

type InviteServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockOrgInvites  *mocks.MockOrgInviteRepositoryInterface
	mockTeamInvites *mocks.MockTeamInviteRepositoryInterface
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	notifier        *fakeNotifier
	orgService      *service.OrgInviteService
	teamService     *service.TeamInviteService

	org *models.Organization
	dso *models.Dso
}

func (suite *InviteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgInvites = mocks.NewMockOrgInviteRepositoryInterface(suite.ctrl)
	suite.mockTeamInvites = mocks.NewMockTeamInviteRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.notifier = &fakeNotifier{}
	opts := service.InviteOptions{TTL: 72 * time.Hour, AppBaseURL: "https://crm.example.com/"}
	suite.orgService = service.NewOrgInviteService(suite.mockOrgInvites, suite.mockOrgs, suite.notifier, validator.New(), opts)
	suite.teamService = service.NewTeamInviteService(suite.mockTeamInvites, suite.notifier, validator.New(), opts)

	suite.org = &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme", Slug: "acme"}
	suite.dso = &models.Dso{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Clinic1", OrgID: &suite.org.ID}
}

func (suite *InviteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InviteServiceTestSuite) TestOrgInvite_Create() {
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockOrgInvites.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.OrgInvite) error {
		suite.Equal("dana@x.com", inv.Email)
		suite.Equal(models.OrgRoleMember, inv.Role)
		suite.Equal(models.InviteStatusPending, inv.Status)
		suite.WithinDuration(time.Now().Add(72*time.Hour), inv.ExpiresAt, time.Minute)
		return nil
	})

	resp, err := suite.orgService.Create(context.Background(), suite.org.ID, "alice", &service.CreateInviteRequest{Email: " Dana@X.com ", Role: "member"})

	suite.Require().NoError(err)
	suite.Equal("dana@x.com", resp.Email)
	suite.Require().Len(suite.notifier.sent, 1)
	msg := suite.notifier.sent[0]
	suite.Equal(notify.InviteKindOrganization, msg.Kind)
	suite.Equal("Acme", msg.ScopeName)
	suite.Equal("https://crm.example.com/login", msg.AcceptURL)
}

// A second pending invite for the same email is a conflict
func (suite *InviteServiceTestSuite) TestOrgInvite_DuplicatePending() {
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockOrgInvites.EXPECT().Create(gomock.Any()).Return(repository.ErrUniqueViolation)

	_, err := suite.orgService.Create(context.Background(), suite.org.ID, "alice", &service.CreateInviteRequest{Email: "dana@x.com", Role: "member"})

	suite.ErrorIs(err, apperrors.ErrInviteExists)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.Empty(suite.notifier.sent)
}

func (suite *InviteServiceTestSuite) TestOrgInvite_OwnerCannotBeInvited() {
	_, err := suite.orgService.Create(context.Background(), suite.org.ID, "alice", &service.CreateInviteRequest{Email: "dana@x.com", Role: "owner"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *InviteServiceTestSuite) TestOrgInvite_BadEmail() {
	_, err := suite.orgService.Create(context.Background(), suite.org.ID, "alice", &service.CreateInviteRequest{Email: "not-an-email", Role: "member"})

	suite.ErrorContains(err, "validation failed")
}

func (suite *InviteServiceTestSuite) TestOrgInvite_SendFailureStillCreates() {
	suite.notifier.err = errors.New("smtp down")
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockOrgInvites.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.orgService.Create(context.Background(), suite.org.ID, "alice", &service.CreateInviteRequest{Email: "dana@x.com", Role: "admin"})

	suite.NoError(err)
}

func (suite *InviteServiceTestSuite) TestOrgInvite_CancelOtherOrgIsNotFound() {
	id := uuid.New()
	suite.mockOrgInvites.EXPECT().GetByID(id).Return(&models.OrgInvite{BaseModel: models.BaseModel{ID: id}, OrgID: uuid.New(), Status: models.InviteStatusPending}, nil)

	err := suite.orgService.Cancel(suite.org.ID, id)

	suite.ErrorIs(err, apperrors.ErrInviteNotFound)
}

func (suite *InviteServiceTestSuite) TestOrgInvite_CancelAccepted() {
	id := uuid.New()
	suite.mockOrgInvites.EXPECT().GetByID(id).Return(&models.OrgInvite{BaseModel: models.BaseModel{ID: id}, OrgID: suite.org.ID, Status: models.InviteStatusAccepted}, nil)

	err := suite.orgService.Cancel(suite.org.ID, id)

	suite.ErrorIs(err, apperrors.ErrInviteNotPending)
}

func (suite *InviteServiceTestSuite) TestOrgInvite_Cancel() {
	id := uuid.New()
	suite.mockOrgInvites.EXPECT().GetByID(id).Return(&models.OrgInvite{BaseModel: models.BaseModel{ID: id}, OrgID: suite.org.ID, Status: models.InviteStatusPending}, nil)
	suite.mockOrgInvites.EXPECT().UpdateStatus(id, models.InviteStatusCancelled).Return(nil)

	suite.NoError(suite.orgService.Cancel(suite.org.ID, id))
}

func (suite *InviteServiceTestSuite) TestOrgInvite_CancelMissing() {
	id := uuid.New()
	suite.mockOrgInvites.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.orgService.Cancel(suite.org.ID, id), apperrors.ErrInviteNotFound)
}

func (suite *InviteServiceTestSuite) TestTeamInvite_RequiresWorkspaceAdmin() {
	_, err := suite.teamService.Create(context.Background(), suite.dso, "bob", models.DsoRoleManager, &service.CreateInviteRequest{Email: "dana@x.com", Role: "viewer"})

	suite.ErrorIs(err, apperrors.ErrWorkspaceAdminNeeded)
}

func (suite *InviteServiceTestSuite) TestTeamInvite_Create() {
	suite.mockTeamInvites.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.TeamInvite) error {
		suite.Equal(suite.dso.ID, inv.DsoID)
		suite.Equal(models.DsoRoleViewer, inv.Role)
		return nil
	})

	resp, err := suite.teamService.Create(context.Background(), suite.dso, "alice", models.DsoRoleAdmin, &service.CreateInviteRequest{Email: "dana@x.com", Role: "viewer"})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.DsoID)
	suite.Equal(suite.dso.ID, *resp.DsoID)
	suite.Require().Len(suite.notifier.sent, 1)
	suite.Equal(notify.InviteKindWorkspace, suite.notifier.sent[0].Kind)
}

func (suite *InviteServiceTestSuite) TestTeamInvite_NormalizesPaddedEmail() {
	suite.mockTeamInvites.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.TeamInvite) error {
		suite.Equal("dana@x.com", inv.Email)
		return nil
	})

	resp, err := suite.teamService.Create(context.Background(), suite.dso, "alice", models.DsoRoleAdmin, &service.CreateInviteRequest{Email: " Dana@X.com ", Role: "viewer"})

	suite.Require().NoError(err)
	suite.Equal("dana@x.com", resp.Email)
	suite.Require().Len(suite.notifier.sent, 1)
	suite.Equal("dana@x.com", suite.notifier.sent[0].To)
}

func (suite *InviteServiceTestSuite) TestTeamInvite_DuplicatePending() {
	suite.mockTeamInvites.EXPECT().Create(gomock.Any()).Return(repository.ErrUniqueViolation)

	_, err := suite.teamService.Create(context.Background(), suite.dso, "alice", models.DsoRoleAdmin, &service.CreateInviteRequest{Email: "dana@x.com", Role: "viewer"})

	suite.ErrorIs(err, apperrors.ErrInviteExists)
}

func (suite *InviteServiceTestSuite) TestTeamInvite_CancelOtherWorkspace() {
	id := uuid.New()
	suite.mockTeamInvites.EXPECT().GetByID(id).Return(&models.TeamInvite{BaseModel: models.BaseModel{ID: id}, DsoID: uuid.New(), Status: models.InviteStatusPending}, nil)

	err := suite.teamService.Cancel(suite.dso.ID, models.DsoRoleAdmin, id)

	suite.ErrorIs(err, apperrors.ErrInviteNotFound)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}
