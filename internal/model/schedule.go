package model

// MatchStatus tracks a scheduled match
type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "UPCOMING"
	MatchCompleted MatchStatus = "COMPLETED"
)

// ScheduleEntry is one planned match for a player
type ScheduleEntry struct {
	ID           string      `json:"id"`
	OpponentName string      `json:"opponent"`
	OpponentID   string      `json:"opponentId"`
	Status       MatchStatus `json:"status"`
	TimeSlot     string      `json:"time"`
}
