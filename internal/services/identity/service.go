package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

// Service resolves players by user id and owns the single session slot
type Service struct {
	repo   *repository.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a new identity Service
func New(repo *repository.Repository, logger *slog.Logger, tp trace.TracerProvider) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		tracer: tp.Tracer("github.com/kefmc/tournament-engine/internal/services/identity"),
	}
}

// FindByUserID returns the first roster player whose user id matches,
// ignoring case
func (s *Service) FindByUserID(ctx context.Context, userID string) (*model.Player, error) {
	roster, err := s.repo.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	for i := range roster {
		if strings.EqualFold(roster[i].UserID, userID) {
			return &roster[i], nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// LoadSession returns the logged-in player, or nil when nobody is logged in
func (s *Service) LoadSession(ctx context.Context) (*model.Player, error) {
	return s.repo.Session(ctx)
}

// SaveSession makes p the logged-in player
func (s *Service) SaveSession(ctx context.Context, p model.Player) error {
	return s.repo.Commit(ctx, repository.SessionChange(p))
}

// ClearSession empties the session slot. The roster is untouched.
func (s *Service) ClearSession(ctx context.Context) error {
	return s.repo.Commit(ctx, repository.ClearSessionChange())
}

// Login starts a session for the player with userID. On a miss the current
// session is left as it was.
func (s *Service) Login(ctx context.Context, userID string) (*model.Player, error) {
	ctx, span := s.tracer.Start(ctx, "Identity.Login",
		trace.WithAttributes(attribute.String("user_id", userID)),
	)
	defer span.End()

	player, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.SaveSession(ctx, *player); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	s.logger.InfoContext(ctx, "player logged in",
		slog.String("player_id", string(player.ID)),
		slog.String("user_id", player.UserID),
	)
	return player, nil
}

// Logout ends the current session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.logger.InfoContext(ctx, "player logged out")
	return nil
}
