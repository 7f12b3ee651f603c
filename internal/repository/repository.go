package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/storage"
)

// Persisted state layout
const (
	SessionKey    = "session-current-user"
	RosterKey     = "registered-users-roster"
	DonationsKey  = "donations-wall"
	HighlightsKey = "highlights-feed"

	schedulePrefix = "schedule-for-"
)

// ScheduleKey returns the key holding a player's schedule
func ScheduleKey(id model.PlayerID) string {
	return schedulePrefix + string(id)
}

// Repository gives typed JSON access to the tournament state held in a
// key-value store. Absent or unreadable values read as empty.
type Repository struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a repository over s
func New(s storage.Storage, logger *slog.Logger) *Repository {
	return &Repository{
		storage: s,
		logger:  logger,
	}
}

// Roster returns every player ever created
func (r *Repository) Roster(ctx context.Context) ([]model.Player, error) {
	return readList[model.Player](ctx, r, RosterKey)
}

// Session returns the current session player, or nil if there is none
func (r *Repository) Session(ctx context.Context) (*model.Player, error) {
	player, found, err := read[model.Player](ctx, r, SessionKey)
	if err != nil || !found || player.ID == "" {
		return nil, err
	}
	return &player, nil
}

// Schedule returns a player's schedule and whether one was stored
func (r *Repository) Schedule(ctx context.Context, id model.PlayerID) ([]model.ScheduleEntry, bool, error) {
	return read[[]model.ScheduleEntry](ctx, r, ScheduleKey(id))
}

// Donations returns the donations wall, newest first
func (r *Repository) Donations(ctx context.Context) ([]model.Donation, error) {
	return readList[model.Donation](ctx, r, DonationsKey)
}

// Highlights returns the highlights feed, newest first
func (r *Repository) Highlights(ctx context.Context) ([]model.Highlight, error) {
	return readList[model.Highlight](ctx, r, HighlightsKey)
}

// Commit encodes every change and writes them in one batch. Either all of
// the changes are persisted or none are.
func (r *Repository) Commit(ctx context.Context, changes ...Change) error {
	mutations := make([]storage.Mutation, 0, len(changes))
	for _, c := range changes {
		m, err := c.mutation()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", c.key, err)
		}
		mutations = append(mutations, m)
	}
	if err := r.storage.Apply(ctx, mutations...); err != nil {
		return fmt.Errorf("committing %d changes: %w", len(mutations), err)
	}
	return nil
}

func readList[T any](ctx context.Context, r *Repository, key string) ([]T, error) {
	list, _, err := read[[]T](ctx, r, key)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// read decodes key. It reports false when the key is absent or the stored
// value cannot be decoded.
func read[T any](ctx context.Context, r *Repository, key string) (T, bool, error) {
	var zero T
	data, err := r.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("reading %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		r.logger.Warn("discarding unreadable state",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return zero, false, nil
	}
	return value, true, nil
}
