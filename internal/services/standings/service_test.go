package standings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
	"github.com/kefmc/tournament-engine/internal/storage/memory"
	"github.com/kefmc/tournament-engine/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	repo    *repository.Repository
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.repo = repository.New(memory.New(), logger)
	s.service = New(s.repo, logger)
	s.ctx = context.Background()
}

func player(id, ward string, rank, points int) model.Player {
	return model.Player{
		ID:       model.PlayerID(id),
		Location: model.Location{Ward: ward},
		Stats:    model.Stats{Rank: rank, Points: points},
	}
}

func (s *ServiceSuite) saveRoster(roster ...model.Player) {
	s.Require().NoError(s.repo.Commit(s.ctx, repository.RosterChange(roster)))
}

func (s *ServiceSuite) TestWardSortsByPointsThenRank() {
	s.saveRoster(
		player("a", "Kibera", 3, 5),
		player("b", "Kibera", 1, 9),
		player("c", "Kibera", 2, 5),
		player("x", "Karen", 1, 14),
	)

	table, err := s.service.Ward(s.ctx, "Kibera")
	s.Require().NoError(err)
	s.Require().Len(table, 3)
	s.Equal(model.PlayerID("b"), table[0].ID)
	s.Equal(model.PlayerID("c"), table[1].ID)
	s.Equal(model.PlayerID("a"), table[2].ID)
}

func (s *ServiceSuite) TestWardKeepsRosterOrderForFullTies() {
	s.saveRoster(
		player("seed_Kibera_79", "Kibera", 80, 0),
		player("u_1", "Kibera", 80, 0),
	)

	table, err := s.service.Ward(s.ctx, "Kibera")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("seed_Kibera_79"), table[0].ID)
	s.Equal(model.PlayerID("u_1"), table[1].ID)
}

func (s *ServiceSuite) TestWardCapsAtTableSize() {
	roster := make([]model.Player, 100)
	for i := range roster {
		roster[i] = player(fmt.Sprintf("p%d", i), "Ngara", i+1, i%15)
	}
	s.saveRoster(roster...)

	table, err := s.service.Ward(s.ctx, "Ngara")
	s.Require().NoError(err)
	s.Len(table, TableSize)
	for i := 1; i < len(table); i++ {
		prev, cur := table[i-1].Stats, table[i].Stats
		s.True(prev.Points > cur.Points || (prev.Points == cur.Points && prev.Rank <= cur.Rank))
	}
}

func (s *ServiceSuite) TestQualifiedFollowsRank() {
	s.saveRoster(
		player("in", "Karen", 80, 0),
		player("out", "Karen", 81, 20),
	)

	table, err := s.service.Ward(s.ctx, "Karen")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("out"), table[0].ID)
	s.False(table[0].Qualified)
	s.True(table[1].Qualified)
}

func (s *ServiceSuite) TestEmptyWard() {
	table, err := s.service.Ward(s.ctx, "Pangani")
	s.Require().NoError(err)
	s.Empty(table)
}

func (s *ServiceSuite) TestUnknownWard() {
	_, err := s.service.Ward(s.ctx, "Atlantis")
	s.ErrorIs(err, model.ErrUnknownWard)
}

func (s *ServiceSuite) TestOverview() {
	gold := player("g", "Kibera", 80, 0)
	gold.Membership = &model.Membership{Tier: model.TierGold, IsVerified: true}
	s.saveRoster(
		player("a", "Kibera", 1, 0),
		player("b", "Karen", 1, 0),
		gold,
	)

	overview, err := s.service.Overview(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, overview.TotalPlayers)
	s.Equal(150, overview.RevenueKES)
	s.Equal(2, overview.ActiveWards)
	s.Equal(map[model.MembershipTier]int{model.TierGold: 1}, overview.Members)
}

func (s *ServiceSuite) TestOverviewOfEmptyRoster() {
	overview, err := s.service.Overview(s.ctx)
	s.Require().NoError(err)
	s.Zero(overview.TotalPlayers)
	s.Zero(overview.RevenueKES)
	s.Zero(overview.ActiveWards)
}

func (s *ServiceSuite) TestPlayersReturnsRosterInOrder() {
	s.saveRoster(player("a", "Kibera", 1, 0), player("b", "Karen", 1, 0))

	players, err := s.service.Players(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("a"), players[0].ID)
}
