package donations

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

// DefaultRecent is the number of donations Recent returns when n is not positive
const DefaultRecent = 5

// MaxAmount is the largest single donation accepted, in KES
const MaxAmount = 1_000_000

// Service records donations to the tournament fund
type Service struct {
	repo   *repository.Repository
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new donations Service
func New(repo *repository.Repository, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Donate adds a donation to the front of the wall
func (s *Service) Donate(ctx context.Context, name string, amount int) (*model.Donation, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidDonation)
	}
	if amount > MaxAmount {
		return nil, fmt.Errorf("%w: amount exceeds %d", model.ErrInvalidDonation, MaxAmount)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultDonorName
	}

	wall, err := s.repo.Donations(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading donations: %w", err)
	}

	now := s.clock.Now()
	donation := model.Donation{
		ID:     nextID(wall, now.UnixMilli()),
		Name:   name,
		Amount: amount,
		Tier:   model.DonorTierFor(amount),
		Date:   now.UTC(),
	}

	wall = append([]model.Donation{donation}, wall...)
	if err := s.repo.Commit(ctx, repository.DonationsChange(wall)); err != nil {
		return nil, fmt.Errorf("saving donation: %w", err)
	}

	s.logger.InfoContext(ctx, "donation received",
		slog.String("donation_id", donation.ID),
		slog.Int("amount", amount),
		slog.String("tier", string(donation.Tier)),
	)
	return &donation, nil
}

// nextID returns d_<millis>, stepping millis forward past ids already on the wall
func nextID(wall []model.Donation, millis int64) string {
	for ; ; millis++ {
		id := fmt.Sprintf("d_%d", millis)
		if !slices.ContainsFunc(wall, func(d model.Donation) bool { return d.ID == id }) {
			return id
		}
	}
}

// Wall returns every donation, largest first
func (s *Service) Wall(ctx context.Context) ([]model.Donation, error) {
	wall, err := s.repo.Donations(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(wall, func(a, b model.Donation) int {
		return cmp.Compare(b.Amount, a.Amount)
	})
	return wall, nil
}

// Recent returns the n latest donations
func (s *Service) Recent(ctx context.Context, n int) ([]model.Donation, error) {
	if n <= 0 {
		n = DefaultRecent
	}
	wall, err := s.repo.Donations(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(wall, func(a, b model.Donation) int {
		return b.Date.Compare(a.Date)
	})
	if len(wall) > n {
		wall = wall[:n]
	}
	return wall, nil
}

// Total sums every donation
func (s *Service) Total(ctx context.Context) (int, error) {
	wall, err := s.repo.Donations(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range wall {
		total += d.Amount
	}
	return total, nil
}
