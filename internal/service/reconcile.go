package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/logger"
	"cs-crm-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const reconcileConcurrency = 4

// ReconcileResult summarizes one reconciliation run
type ReconcileResult struct {
	OrgInvitesAccepted  int `json:"org_invites_accepted"`
	TeamInvitesAccepted int `json:"team_invites_accepted"`
	GrantsCreated       int `json:"grants_created"`
	Skipped             int `json:"skipped"`
	Failed              int `json:"failed"`
}

// ReconcileService converts pending invites addressed to a user's email into
// memberships and grants. It runs after sign-in.
type ReconcileService struct {
	orgInvites  repository.OrgInviteRepositoryInterface
	teamInvites repository.TeamInviteRepositoryInterface
	members     repository.OrgMemberRepositoryInterface
	dsos        repository.DsoRepositoryInterface
	access      repository.DsoAccessRepositoryInterface
	recorder    Recorder
	now         func() time.Time
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(
	orgInvites repository.OrgInviteRepositoryInterface,
	teamInvites repository.TeamInviteRepositoryInterface,
	members repository.OrgMemberRepositoryInterface,
	dsos repository.DsoRepositoryInterface,
	access repository.DsoAccessRepositoryInterface,
	recorder Recorder,
) *ReconcileService {
	return &ReconcileService{
		orgInvites:  orgInvites,
		teamInvites: teamInvites,
		members:     members,
		dsos:        dsos,
		access:      access,
		recorder:    recorderOrNoop(recorder),
		now:         time.Now,
	}
}

// Reconcile accepts every pending, unexpired invite for email. Each invite is
// handled on its own: a failure is logged, counted and leaves that invite pending.
func (s *ReconcileService) Reconcile(ctx context.Context, userID, email string) (*ReconcileResult, error) {
	result := &ReconcileResult{}
	email = models.NormalizeEmail(email)
	if userID == "" || email == "" {
		return result, nil
	}
	log := logger.WithContext(ctx).WithField("reconcile_user", userID)

	current, err := s.members.GetUserOrg(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user organization: %w", err)
	}

	// Org invites go first so that team invites see the acceptor's organization
	orgInvites, err := s.orgInvites.ListPendingByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list org invites: %w", err)
	}
	for i := range orgInvites {
		current = s.acceptOrgInvite(log, &orgInvites[i], userID, current, result)
	}

	teamInvites, err := s.teamInvites.ListPendingByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list team invites: %w", err)
	}
	live := make([]models.TeamInvite, 0, len(teamInvites))
	for _, inv := range teamInvites {
		if inv.IsExpired(s.now()) {
			result.Skipped++
			s.recorder.RecordInvite("team", "expired")
			continue
		}
		live = append(live, inv)
	}
	if len(live) == 0 {
		return result, nil
	}

	prefetched, err := s.prefetch(ctx, live)
	if err != nil {
		return nil, fmt.Errorf("failed to load team invite scope: %w", err)
	}

	existing, err := s.access.ListDsoIDsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing grants: %w", err)
	}
	held := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		held[id] = true
	}

	for i := range live {
		current = s.acceptTeamInvite(log, &live[i], userID, current, prefetched, held, result)
	}

	return result, nil
}

func (s *ReconcileService) acceptOrgInvite(log *logger.Logger, inv *models.OrgInvite, userID string, current *models.OrgMember, result *ReconcileResult) *models.OrgMember {
	log = log.WithField("invite_id", inv.ID)

	if inv.IsExpired(s.now()) {
		result.Skipped++
		s.recorder.RecordInvite("org", "expired")
		return current
	}
	if current != nil && current.OrgID != inv.OrgID {
		log.WithField("org_id", inv.OrgID).Warn("Invite left pending: user already belongs to another organization")
		result.Skipped++
		s.recorder.RecordInvite("org", "other_org")
		return current
	}

	member := &models.OrgMember{OrgID: inv.OrgID, UserID: userID, Role: inv.Role, JoinedAt: s.now()}
	if err := s.members.Create(member); err != nil {
		if !repository.IsUniqueViolation(err) {
			log.WithError(err).Error("Failed to accept org invite")
			result.Failed++
			s.recorder.RecordInvite("org", "failed")
			return current
		}
		// Already a member: the invite is satisfied
	} else if current == nil {
		current = member
	}

	if err := s.orgInvites.UpdateStatus(inv.ID, models.InviteStatusAccepted); err != nil {
		log.WithError(err).Error("Failed to mark org invite accepted")
		result.Failed++
		s.recorder.RecordInvite("org", "failed")
		return current
	}
	result.OrgInvitesAccepted++
	s.recorder.RecordInvite("org", "accepted")
	return current
}

// teamScope holds lookups shared by every team invite of one reconciliation
type teamScope struct {
	dsos        map[uuid.UUID]*models.Dso
	inviterDsos map[string][]uuid.UUID
	orgDsos     map[uuid.UUID]map[uuid.UUID]bool
}

// prefetch loads invited workspaces, each inviter's grants and each org's
// workspaces concurrently
func (s *ReconcileService) prefetch(ctx context.Context, invites []models.TeamInvite) (*teamScope, error) {
	scope := &teamScope{
		dsos:        map[uuid.UUID]*models.Dso{},
		inviterDsos: map[string][]uuid.UUID{},
		orgDsos:     map[uuid.UUID]map[uuid.UUID]bool{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)

	seenDso := map[uuid.UUID]bool{}
	seenInviter := map[string]bool{}
	for _, inv := range invites {
		if !seenDso[inv.DsoID] {
			seenDso[inv.DsoID] = true
			dsoID := inv.DsoID
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				dso, err := s.dsos.GetByID(dsoID)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				if err != nil {
					return err
				}
				mu.Lock()
				scope.dsos[dsoID] = dso
				mu.Unlock()
				return nil
			})
		}
		if !seenInviter[inv.InvitedBy] {
			seenInviter[inv.InvitedBy] = true
			inviter := inv.InvitedBy
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				ids, err := s.access.ListDsoIDsForUser(inviter)
				if err != nil {
					return err
				}
				mu.Lock()
				scope.inviterDsos[inviter] = ids
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)
	seenOrg := map[uuid.UUID]bool{}
	for _, dso := range scope.dsos {
		if dso.OrgID == nil || seenOrg[*dso.OrgID] {
			continue
		}
		orgID := *dso.OrgID
		seenOrg[orgID] = true
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dsos, err := s.dsos.ListByOrg(orgID)
			if err != nil {
				return err
			}
			set := make(map[uuid.UUID]bool, len(dsos))
			for _, d := range dsos {
				set[d.ID] = true
			}
			mu.Lock()
			scope.orgDsos[orgID] = set
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scope, nil
}

// acceptTeamInvite grants the invite's role on the invited workspace and on every
// workspace the inviter holds in the same organization, minus what the user has.
func (s *ReconcileService) acceptTeamInvite(
	log *logger.Logger,
	inv *models.TeamInvite,
	userID string,
	current *models.OrgMember,
	scope *teamScope,
	held map[uuid.UUID]bool,
	result *ReconcileResult,
) *models.OrgMember {
	log = log.WithField("invite_id", inv.ID)

	dso, ok := scope.dsos[inv.DsoID]
	if !ok {
		log.WithField("dso_id", inv.DsoID).Warn("Invite left pending: workspace no longer exists")
		result.Skipped++
		s.recorder.RecordInvite("team", "missing_dso")
		return current
	}

	targets := []uuid.UUID{inv.DsoID}
	if dso.OrgID != nil {
		orgID := *dso.OrgID
		switch {
		case current == nil:
			member := &models.OrgMember{OrgID: orgID, UserID: userID, Role: models.OrgRoleMember, JoinedAt: s.now()}
			if err := s.members.Create(member); err != nil && !repository.IsUniqueViolation(err) {
				log.WithError(err).Error("Failed to add invited user to organization")
				result.Failed++
				s.recorder.RecordInvite("team", "failed")
				return current
			}
			current = member
		case current.OrgID != orgID:
			log.WithField("org_id", orgID).Warn("Invite left pending: workspace belongs to another organization")
			result.Skipped++
			s.recorder.RecordInvite("team", "other_org")
			return current
		}

		for _, id := range scope.inviterDsos[inv.InvitedBy] {
			if id != inv.DsoID && scope.orgDsos[orgID][id] {
				targets = append(targets, id)
			}
		}
	}

	grants := make([]models.DsoAccessGrant, 0, len(targets))
	for _, id := range targets {
		if held[id] {
			continue
		}
		grants = append(grants, models.DsoAccessGrant{UserID: userID, DsoID: id, Role: inv.Role})
	}

	created, err := s.access.CreateMany(grants)
	if err != nil {
		log.WithError(err).Error("Failed to create grants for team invite")
		result.Failed++
		s.recorder.RecordInvite("team", "failed")
		return current
	}
	for _, g := range grants {
		held[g.DsoID] = true
	}

	if err := s.teamInvites.UpdateStatus(inv.ID, models.InviteStatusAccepted); err != nil {
		log.WithError(err).Error("Failed to mark team invite accepted")
		result.Failed++
		s.recorder.RecordInvite("team", "failed")
		return current
	}
	result.TeamInvitesAccepted++
	result.GrantsCreated += int(created)
	s.recorder.RecordInvite("team", "accepted")
	return current
}
