package response

import (
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/services/schedule"
	"github.com/kefmc/tournament-engine/internal/services/standings"
)

// PlayerResponse wraps a single player
type PlayerResponse struct {
	Player model.Player `json:"player"`
}

// PlayersResponse lists players
type PlayersResponse struct {
	Players []model.Player `json:"players"`
	Total   int            `json:"total"`
}

// ScheduleResponse is a player's schedule with progress
type ScheduleResponse struct {
	PlayerID  model.PlayerID        `json:"playerId"`
	Entries   []model.ScheduleEntry `json:"entries"`
	Completed int                   `json:"completed"`
	Total     int                   `json:"total"`
}

// ScheduleFromEntries builds a ScheduleResponse
func ScheduleFromEntries(id model.PlayerID, entries []model.ScheduleEntry) ScheduleResponse {
	return ScheduleResponse{
		PlayerID:  id,
		Entries:   entries,
		Completed: schedule.CompletedCount(entries),
		Total:     len(entries),
	}
}

// EntryResponse wraps one schedule entry
type EntryResponse struct {
	Entry model.ScheduleEntry `json:"entry"`
}

// TiersResponse lists the membership catalogue
type TiersResponse struct {
	Tiers []model.TierOffer `json:"tiers"`
}

// WardsResponse lists the selectable areas
type WardsResponse struct {
	Wards       []string `json:"wards"`
	SubCounties []string `json:"subCounties"`
}

// StandingsResponse is a ward league table
type StandingsResponse struct {
	Ward      string               `json:"ward"`
	Standings []standings.Standing `json:"standings"`
}

// DonationResponse wraps a single donation
type DonationResponse struct {
	Donation model.Donation `json:"donation"`
}

// DonationsResponse is the donations wall
type DonationsResponse struct {
	Wall   []model.Donation `json:"wall"`
	Recent []model.Donation `json:"recent"`
	Total  int              `json:"total"`
}

// HighlightResponse wraps a single highlight
type HighlightResponse struct {
	Highlight model.Highlight `json:"highlight"`
}

// HighlightsResponse is the highlights feed
type HighlightsResponse struct {
	Highlights []model.Highlight `json:"highlights"`
}
