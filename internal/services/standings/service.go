package standings

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

const (
	// TableSize is the number of rows shown in a ward table
	TableSize = 80
	// QualifyingRank is the lowest rank that advances from the ward
	QualifyingRank = 80
	// EntryFeeKES is the revenue counted per registered player
	EntryFeeKES = 50
)

// Standing is one row of a ward league table
type Standing struct {
	model.Player
	Qualified bool `json:"qualified"`
}

// Overview summarizes the roster for the admin console
type Overview struct {
	TotalPlayers int                          `json:"totalPlayers"`
	RevenueKES   int                          `json:"revenue"`
	ActiveWards  int                          `json:"activeWards"`
	Members      map[model.MembershipTier]int `json:"members"`
}

// Service derives league tables and admin figures from the roster
type Service struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// New creates a new standings Service
func New(repo *repository.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Ward returns the league table for ward: points descending, ties broken by
// rank ascending, at most TableSize rows
func (s *Service) Ward(ctx context.Context, ward string) ([]Standing, error) {
	if !model.IsWard(ward) {
		return nil, model.ErrUnknownWard
	}

	roster, err := s.repo.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	var players []model.Player
	for _, p := range roster {
		if p.Location.Ward == ward {
			players = append(players, p)
		}
	}
	slices.SortStableFunc(players, func(a, b model.Player) int {
		if c := cmp.Compare(b.Stats.Points, a.Stats.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Stats.Rank, b.Stats.Rank)
	})
	if len(players) > TableSize {
		players = players[:TableSize]
	}

	table := make([]Standing, len(players))
	for i, p := range players {
		table[i] = Standing{
			Player:    p,
			Qualified: p.Stats.Rank <= QualifyingRank,
		}
	}
	return table, nil
}

// Overview computes roster-wide totals
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	roster, err := s.repo.Roster(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("loading roster: %w", err)
	}

	wards := make(map[string]struct{})
	members := make(map[model.MembershipTier]int)
	for _, p := range roster {
		wards[p.Location.Ward] = struct{}{}
		if p.Membership != nil {
			members[p.Membership.Tier]++
		}
	}

	return Overview{
		TotalPlayers: len(roster),
		RevenueKES:   len(roster) * EntryFeeKES,
		ActiveWards:  len(wards),
		Members:      members,
	}, nil
}

// Players returns the whole roster in stored order
func (s *Service) Players(ctx context.Context) ([]model.Player, error) {
	return s.repo.Roster(ctx)
}
