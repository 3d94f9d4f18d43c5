//go:build integration

package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite runs the guarded membership and grant writes against Postgres
type MembershipRepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	factories *testutils.FactorySet
	orgs      *OrganizationRepository
	members   *OrgMemberRepository
	dsos      *DsoRepository
	access    *DsoAccessRepository
	invites   *OrgInviteRepository
	team      *TeamInviteRepository
}

func (s *MembershipRepositoryTestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	db := s.base.DB
	s.factories = testutils.NewFactorySet()
	s.orgs = NewOrganizationRepository(db)
	s.members = NewOrgMemberRepository(db)
	s.dsos = NewDsoRepository(db)
	s.access = NewDsoAccessRepository(db)
	s.invites = NewOrgInviteRepository(db)
	s.team = NewTeamInviteRepository(db)
}

func (s *MembershipRepositoryTestSuite) SetupTest()    { s.base.SetupTest() }
func (s *MembershipRepositoryTestSuite) TearDownTest() { s.base.TearDownTest() }

func (s *MembershipRepositoryTestSuite) newOrg(ownerID string) uuid.UUID {
	org := s.factories.Organization.Create(ownerID)
	s.Require().NoError(s.orgs.Create(org))
	s.Require().NoError(s.members.Create(s.factories.Member.Create(org.ID, ownerID, models.OrgRoleOwner)))
	return org.ID
}

func (s *MembershipRepositoryTestSuite) newDso(orgID uuid.UUID, adminID string) uuid.UUID {
	dso := s.factories.Dso.Create(&orgID, "Clinic")
	s.Require().NoError(s.dsos.Create(dso))
	s.Require().NoError(s.access.Create(s.factories.Grant.Create(adminID, dso.ID, models.DsoRoleAdmin)))
	return dso.ID
}

func (s *MembershipRepositoryTestSuite) TestGetUserOrgWithoutMembership() {
	member, err := s.members.GetUserOrg("nobody")
	s.NoError(err)
	s.Nil(member)
}

func (s *MembershipRepositoryTestSuite) TestCheckOrgMembershipPairwise() {
	orgA := s.newOrg("alice")
	orgB := s.newOrg("bob")

	check, err := s.members.CheckOrgMembership("alice", orgA)
	s.NoError(err)
	s.True(check.IsMember)
	s.Equal(models.OrgRoleOwner, check.Role)

	check, err = s.members.CheckOrgMembership("alice", orgB)
	s.NoError(err)
	s.False(check.IsMember)
}

func (s *MembershipRepositoryTestSuite) TestDuplicateMembershipIsUniqueViolation() {
	orgID := s.newOrg("alice")
	err := s.members.Create(s.factories.Member.Create(orgID, "alice", models.OrgRoleMember))
	s.ErrorIs(err, ErrUniqueViolation)
}

func (s *MembershipRepositoryTestSuite) TestLastOwnerCannotBeDemotedOrRemoved() {
	orgID := s.newOrg("alice")

	s.ErrorIs(s.members.UpdateRoleGuarded(orgID, "alice", models.OrgRoleAdmin), ErrLastOwner)
	s.ErrorIs(s.members.DeleteGuarded(orgID, "alice"), ErrLastOwner)

	check, err := s.members.CheckOrgMembership("alice", orgID)
	s.NoError(err)
	s.Equal(models.OrgRoleOwner, check.Role)
}

func (s *MembershipRepositoryTestSuite) TestSecondOwnerAllowsDemotion() {
	orgID := s.newOrg("alice")
	s.Require().NoError(s.members.Create(s.factories.Member.Create(orgID, "bob", models.OrgRoleOwner)))

	s.NoError(s.members.UpdateRoleGuarded(orgID, "alice", models.OrgRoleAdmin))
	s.ErrorIs(s.members.UpdateRoleGuarded(orgID, "bob", models.OrgRoleMember), ErrLastOwner)
}

func (s *MembershipRepositoryTestSuite) TestConcurrentOwnerDemotionsKeepOneOwner() {
	orgID := s.newOrg("alice")
	s.Require().NoError(s.members.Create(s.factories.Member.Create(orgID, "bob", models.OrgRoleOwner)))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			errs[i] = s.members.UpdateRoleGuarded(orgID, user, models.OrgRoleMember)
		}(i, user)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			s.ErrorIs(err, ErrLastOwner)
			failures++
		}
	}
	s.Equal(1, failures)

	members, err := s.members.ListByOrg(orgID)
	s.NoError(err)
	owners := 0
	for _, m := range members {
		if m.Role == models.OrgRoleOwner {
			owners++
		}
	}
	s.Equal(1, owners)
}

func (s *MembershipRepositoryTestSuite) TestRemovingMemberDeletesOrgGrants() {
	orgID := s.newOrg("alice")
	dsoID := s.newDso(orgID, "alice")
	s.Require().NoError(s.members.Create(s.factories.Member.Create(orgID, "carol", models.OrgRoleMember)))
	s.Require().NoError(s.access.Create(s.factories.Grant.Create("carol", dsoID, models.DsoRoleViewer)))

	s.NoError(s.members.DeleteGuarded(orgID, "carol"))

	check, err := s.access.CheckDsoAccess("carol", dsoID)
	s.NoError(err)
	s.False(check.HasAccess)
}

func (s *MembershipRepositoryTestSuite) TestRemovingSoleWorkspaceAdminIsRejected() {
	orgID := s.newOrg("alice")
	s.Require().NoError(s.members.Create(s.factories.Member.Create(orgID, "dave", models.OrgRoleAdmin)))
	dsoID := s.newDso(orgID, "dave")

	s.ErrorIs(s.members.DeleteGuarded(orgID, "dave"), ErrLastAdmin)

	check, err := s.access.CheckDsoAccess("dave", dsoID)
	s.NoError(err)
	s.True(check.HasAccess)
	member, err := s.members.GetUserOrg("dave")
	s.NoError(err)
	s.NotNil(member)
}

func (s *MembershipRepositoryTestSuite) TestConcurrentRevokeAndMemberRemovalKeepOneAdmin() {
	for round := 0; round < 5; round++ {
		owner := fmt.Sprintf("owner-%d", round)
		carol := fmt.Sprintf("carol-%d", round)
		orgID := s.newOrg(owner)
		dsoID := s.newDso(orgID, owner)
		s.Require().NoError(s.members.Create(s.factories.Member.Create(orgID, carol, models.OrgRoleMember)))
		s.Require().NoError(s.access.Create(s.factories.Grant.Create(carol, dsoID, models.DsoRoleAdmin)))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = s.access.DeleteGuarded(owner, dsoID)
		}()
		go func() {
			defer wg.Done()
			errs[1] = s.members.DeleteGuarded(orgID, carol)
		}()
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				s.ErrorIs(err, ErrLastAdmin)
				failures++
			}
		}
		s.Equal(1, failures, "round %d", round)

		grants, err := s.access.ListByOrg(orgID)
		s.Require().NoError(err)
		admins := 0
		for _, g := range grants {
			if g.Role == models.DsoRoleAdmin {
				admins++
			}
		}
		s.Equal(1, admins, "round %d", round)
	}
}

func (s *MembershipRepositoryTestSuite) TestLastWorkspaceAdminGuards() {
	orgID := s.newOrg("alice")
	dsoID := s.newDso(orgID, "alice")

	s.ErrorIs(s.access.UpdateRoleGuarded("alice", dsoID, models.DsoRoleViewer), ErrLastAdmin)
	s.ErrorIs(s.access.DeleteGuarded("alice", dsoID), ErrLastAdmin)

	s.Require().NoError(s.access.Create(s.factories.Grant.Create("bob", dsoID, models.DsoRoleAdmin)))
	s.NoError(s.access.UpdateRoleGuarded("alice", dsoID, models.DsoRoleManager))
	s.ErrorIs(s.access.DeleteGuarded("bob", dsoID), ErrLastAdmin)
}

func (s *MembershipRepositoryTestSuite) TestGuardedOpsOnMissingRows() {
	orgID := s.newOrg("alice")
	dsoID := s.newDso(orgID, "alice")

	s.ErrorIs(s.members.DeleteGuarded(orgID, "ghost"), gorm.ErrRecordNotFound)
	s.ErrorIs(s.access.DeleteGuarded("ghost", dsoID), gorm.ErrRecordNotFound)
}

func (s *MembershipRepositoryTestSuite) TestCreateManySkipsExistingGrants() {
	orgID := s.newOrg("alice")
	first := s.newDso(orgID, "alice")
	second := s.newDso(orgID, "alice")

	inserted, err := s.access.CreateMany([]models.DsoAccessGrant{
		*s.factories.Grant.Create("alice", first, models.DsoRoleViewer),
		*s.factories.Grant.Create("erin", second, models.DsoRoleViewer),
	})
	s.NoError(err)
	s.Equal(int64(1), inserted)

	ids, err := s.access.ListDsoIDsForUser("alice")
	s.NoError(err)
	s.ElementsMatch([]uuid.UUID{first, second}, ids)
}

func (s *MembershipRepositoryTestSuite) TestPendingInviteIsUniquePerOrgAndEmail() {
	orgID := s.newOrg("alice")

	first := s.factories.Invite.OrgInvite(orgID, "X@Example.com", "alice", models.OrgRoleMember, time.Hour)
	s.Require().NoError(s.invites.Create(first))

	dup := s.factories.Invite.OrgInvite(orgID, "x@example.com", "alice", models.OrgRoleAdmin, time.Hour)
	s.ErrorIs(s.invites.Create(dup), ErrUniqueViolation)

	s.Require().NoError(s.invites.UpdateStatus(first.ID, models.InviteStatusCancelled))
	s.NoError(s.invites.Create(dup))

	pending, err := s.invites.ListPendingByEmail("x@example.com")
	s.NoError(err)
	s.Len(pending, 1)
	s.Equal(dup.ID, pending[0].ID)
}

func (s *MembershipRepositoryTestSuite) TestAcceptedInviteAllowsNewInvite() {
	orgID := s.newOrg("alice")

	first := s.factories.Invite.OrgInvite(orgID, "z@example.com", "alice", models.OrgRoleMember, time.Hour)
	s.Require().NoError(s.invites.Create(first))
	s.Require().NoError(s.invites.UpdateStatus(first.ID, models.InviteStatusAccepted))

	again := s.factories.Invite.OrgInvite(orgID, "z@example.com", "alice", models.OrgRoleAdmin, time.Hour)
	s.NoError(s.invites.Create(again))

	dsoID := s.newDso(orgID, "alice")
	team := s.factories.Invite.TeamInvite(dsoID, "z@example.com", "alice", models.DsoRoleViewer, time.Hour)
	s.Require().NoError(s.team.Create(team))
	s.Require().NoError(s.team.UpdateStatus(team.ID, models.InviteStatusAccepted))
	s.NoError(s.team.Create(s.factories.Invite.TeamInvite(dsoID, "z@example.com", "alice", models.DsoRoleManager, time.Hour)))
}

func (s *MembershipRepositoryTestSuite) TestPendingTeamInviteIsUniquePerDsoAndEmail() {
	orgID := s.newOrg("alice")
	dsoID := s.newDso(orgID, "alice")

	s.Require().NoError(s.team.Create(s.factories.Invite.TeamInvite(dsoID, "y@example.com", "alice", models.DsoRoleViewer, time.Hour)))
	err := s.team.Create(s.factories.Invite.TeamInvite(dsoID, "y@example.com", "alice", models.DsoRoleManager, time.Hour))
	s.ErrorIs(err, ErrUniqueViolation)
}

func (s *MembershipRepositoryTestSuite) TestListForUserHonorsGrantsAndArchive() {
	orgID := s.newOrg("alice")
	visible := s.newDso(orgID, "alice")
	archived := s.newDso(orgID, "alice")
	s.newDso(orgID, "bob")
	s.Require().NoError(s.dsos.SetArchived(archived, true))

	dsos, err := s.dsos.ListForUser(orgID, "alice", false)
	s.NoError(err)
	s.Require().Len(dsos, 1)
	s.Equal(visible, dsos[0].ID)

	dsos, err = s.dsos.ListForUser(orgID, "alice", true)
	s.NoError(err)
	s.Len(dsos, 2)
}

func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
