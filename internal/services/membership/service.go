package membership

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

// Service applies membership purchases to the logged-in player
type Service struct {
	repo   *repository.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a new membership Service
func New(repo *repository.Repository, logger *slog.Logger, tp trace.TracerProvider) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		tracer: tp.Tracer("github.com/kefmc/tournament-engine/internal/services/membership"),
	}
}

// Tiers returns the tiers on sale
func (s *Service) Tiers() []model.TierOffer {
	return model.TierCatalogue()
}

// Upgrade gives the session player a verified membership of tier and writes
// the same player to the session and the roster. It returns nil, nil when
// nobody is logged in.
func (s *Service) Upgrade(ctx context.Context, tier model.MembershipTier) (*model.Player, error) {
	ctx, span := s.tracer.Start(ctx, "Membership.Upgrade",
		trace.WithAttributes(attribute.String("tier", string(tier))),
	)
	defer span.End()

	tier, err := model.ParseTier(string(tier))
	if err != nil {
		return nil, err
	}

	current, err := s.repo.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if current == nil {
		s.logger.DebugContext(ctx, "upgrade without session ignored")
		return nil, nil
	}

	upgraded := *current
	upgraded.Membership = &model.Membership{Tier: tier, IsVerified: true}

	roster, err := s.repo.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	for i := range roster {
		if roster[i].ID == upgraded.ID {
			roster[i] = upgraded
		}
	}

	err = s.repo.Commit(ctx,
		repository.SessionChange(upgraded),
		repository.RosterChange(roster),
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("saving membership: %w", err)
	}

	s.logger.InfoContext(ctx, "membership upgraded",
		slog.String("player_id", string(upgraded.ID)),
		slog.String("tier", string(tier)),
	)
	return &upgraded, nil
}
