package repository

import (
	"encoding/json"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/storage"
)

// Change is one typed write inside a Commit
type Change struct {
	key    string
	value  any
	delete bool
}

func (c Change) mutation() (storage.Mutation, error) {
	if c.delete {
		return storage.Remove(c.key), nil
	}
	data, err := json.Marshal(c.value)
	if err != nil {
		return storage.Mutation{}, err
	}
	return storage.Put(c.key, data), nil
}

// RosterChange replaces the whole roster
func RosterChange(roster []model.Player) Change {
	if roster == nil {
		roster = []model.Player{}
	}
	return Change{key: RosterKey, value: roster}
}

// SessionChange overwrites the session slot
func SessionChange(player model.Player) Change {
	return Change{key: SessionKey, value: player}
}

// ClearSessionChange removes the session slot
func ClearSessionChange() Change {
	return Change{key: SessionKey, delete: true}
}

// ScheduleChange replaces a player's schedule
func ScheduleChange(id model.PlayerID, entries []model.ScheduleEntry) Change {
	return Change{key: ScheduleKey(id), value: entries}
}

// DonationsChange replaces the donations wall
func DonationsChange(donations []model.Donation) Change {
	return Change{key: DonationsKey, value: donations}
}

// HighlightsChange replaces the highlights feed
func HighlightsChange(highlights []model.Highlight) Change {
	return Change{key: HighlightsKey, value: highlights}
}
