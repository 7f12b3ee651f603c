package membership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
	"github.com/kefmc/tournament-engine/internal/storage/memory"
	"github.com/kefmc/tournament-engine/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	repo    *repository.Repository
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.repo = repository.New(s.storage, logger)
	s.service = New(s.repo, logger, noop.NewTracerProvider())
	s.ctx = context.Background()
}

func (s *ServiceSuite) login(p model.Player, roster ...model.Player) {
	s.Require().NoError(s.repo.Commit(s.ctx,
		repository.RosterChange(roster),
		repository.SessionChange(p),
	))
}

func (s *ServiceSuite) TestTiersListsCatalogue() {
	tiers := s.service.Tiers()
	s.Require().Len(tiers, 4)
	s.Equal(model.TierBronze, tiers[0].Tier)
	s.Equal(1999, tiers[3].PriceKES)
}

func (s *ServiceSuite) TestUpgradeUpdatesSessionAndRoster() {
	me := model.Player{ID: "u_1", UserID: "K_MWA", Stats: model.Stats{Rank: 80}}
	other := model.Player{ID: "seed_Kibera_0", UserID: "MUSA_1"}
	s.login(me, other, me)

	upgraded, err := s.service.Upgrade(s.ctx, model.TierGold)
	s.Require().NoError(err)
	s.Require().NotNil(upgraded)
	s.Equal(&model.Membership{Tier: model.TierGold, IsVerified: true}, upgraded.Membership)

	session, _ := s.repo.Session(s.ctx)
	roster, _ := s.repo.Roster(s.ctx)
	s.Require().Len(roster, 2)
	s.Equal(*session, roster[1])
	s.Equal(*upgraded, *session)
	s.Nil(roster[0].Membership)
	s.Equal(80, session.Stats.Rank)
}

func (s *ServiceSuite) TestUpgradeReplacesPreviousTier() {
	me := model.Player{ID: "u_1", UserID: "K_MWA"}
	s.login(me, me)

	_, err := s.service.Upgrade(s.ctx, model.TierPlatinum)
	s.Require().NoError(err)
	upgraded, err := s.service.Upgrade(s.ctx, model.TierBronze)
	s.Require().NoError(err)

	s.Equal(model.TierBronze, upgraded.Membership.Tier)
	roster, _ := s.repo.Roster(s.ctx)
	s.Equal(model.TierBronze, roster[0].Membership.Tier)
}

func (s *ServiceSuite) TestUpgradeWithoutSessionIsNoop() {
	me := model.Player{ID: "u_1", UserID: "K_MWA"}
	s.Require().NoError(s.repo.Commit(s.ctx, repository.RosterChange([]model.Player{me})))
	before, _ := s.storage.Get(s.ctx, repository.RosterKey)

	upgraded, err := s.service.Upgrade(s.ctx, model.TierGold)
	s.NoError(err)
	s.Nil(upgraded)

	after, _ := s.storage.Get(s.ctx, repository.RosterKey)
	s.Equal(before, after)
	s.Equal(1, s.storage.Keys())
}

func (s *ServiceSuite) TestUpgradeSessionMissingFromRoster() {
	me := model.Player{ID: "u_1", UserID: "K_MWA"}
	other := model.Player{ID: "u_2", UserID: "OTHER"}
	s.login(me, other)

	upgraded, err := s.service.Upgrade(s.ctx, model.TierSilver)
	s.Require().NoError(err)
	s.True(upgraded.IsVerified())

	roster, _ := s.repo.Roster(s.ctx)
	s.Require().Len(roster, 1)
	s.Nil(roster[0].Membership)
}

func (s *ServiceSuite) TestUpgradeRejectsUnknownTier() {
	me := model.Player{ID: "u_1"}
	s.login(me, me)

	_, err := s.service.Upgrade(s.ctx, model.MembershipTier("Diamond"))
	s.ErrorIs(err, model.ErrUnknownTier)

	session, _ := s.repo.Session(s.ctx)
	s.Nil(session.Membership)
}

func (s *ServiceSuite) TestUpgradeNormalizesTierName() {
	me := model.Player{ID: "u_1"}
	s.login(me, me)

	upgraded, err := s.service.Upgrade(s.ctx, model.MembershipTier("gold"))
	s.Require().NoError(err)
	s.Equal(model.TierGold, upgraded.Membership.Tier)
}
