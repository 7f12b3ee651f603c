package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

const (
	// ScheduleLength is the number of matches every player is scheduled for
	ScheduleLength = 6

	placeholderName = "TBD Elite"
	placeholderID   = "QUEUING"

	defaultOpponentName = "Elite Opponent"
	defaultOpponentID   = "E_PRO"
)

// Service builds and tracks per-player match schedules
type Service struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// New creates a new schedule Service
func New(repo *repository.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ForRegistration pairs a new registrant with the first ScheduleLength
// opponents. Slots without an opponent are filled with a queuing placeholder.
func ForRegistration(playerID model.PlayerID, opponents []model.Player) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, ScheduleLength)
	for i := range entries {
		name, id := placeholderName, placeholderID
		if i < len(opponents) {
			name, id = opponents[i].Name, opponents[i].UserID
		}
		entries[i] = newEntry(playerID, i, name, id)
	}
	return entries
}

func defaultSchedule(playerID model.PlayerID) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, ScheduleLength)
	for i := range entries {
		entries[i] = newEntry(playerID, i, defaultOpponentName, defaultOpponentID)
	}
	return entries
}

func newEntry(playerID model.PlayerID, i int, opponentName, opponentID string) model.ScheduleEntry {
	return model.ScheduleEntry{
		ID:           fmt.Sprintf("match_%s_%d", playerID, i),
		OpponentName: opponentName,
		OpponentID:   opponentID,
		Status:       model.MatchUpcoming,
		TimeSlot:     fmt.Sprintf("Match Day %d", i+1),
	}
}

// Get returns the stored schedule for playerID. A player without one gets a
// default schedule, which is persisted before it is returned.
func (s *Service) Get(ctx context.Context, playerID model.PlayerID) ([]model.ScheduleEntry, error) {
	entries, found, err := s.repo.Schedule(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	if found && entries != nil {
		return entries, nil
	}

	entries = defaultSchedule(playerID)
	if err := s.repo.Commit(ctx, repository.ScheduleChange(playerID, entries)); err != nil {
		return nil, fmt.Errorf("saving default schedule: %w", err)
	}
	s.logger.InfoContext(ctx, "created default schedule",
		slog.String("player_id", string(playerID)),
	)
	return entries, nil
}

// Complete marks one entry of the player's schedule as played. Completing an
// entry twice has no further effect.
func (s *Service) Complete(ctx context.Context, playerID model.PlayerID, entryID string) (*model.ScheduleEntry, error) {
	entries, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range entries {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrScheduleEntryNotFound
	}

	if entries[idx].Status == model.MatchCompleted {
		entry := entries[idx]
		return &entry, nil
	}

	entries[idx].Status = model.MatchCompleted
	if err := s.repo.Commit(ctx, repository.ScheduleChange(playerID, entries)); err != nil {
		return nil, fmt.Errorf("saving schedule: %w", err)
	}

	s.logger.InfoContext(ctx, "match completed",
		slog.String("player_id", string(playerID)),
		slog.String("entry_id", entryID),
	)
	entry := entries[idx]
	return &entry, nil
}

// CompletedCount counts the completed entries
func CompletedCount(entries []model.ScheduleEntry) int {
	n := 0
	for _, e := range entries {
		if e.Status == model.MatchCompleted {
			n++
		}
	}
	return n
}
