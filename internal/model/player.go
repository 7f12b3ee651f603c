package model

// PlayerID uniquely identifies a player across the roster
type PlayerID string

// Stage is a tournament stage, ordered smallest to largest
type Stage string

const (
	StagePrequalify Stage = "Prequalify"
	StageWard       Stage = "Ward"
	StageSubCounty  Stage = "Sub-County"
	StageCounty     Stage = "County"
	StageRegional   Stage = "Regional"
	StageNational   Stage = "National Finals"
)

// Stages returns every stage in tournament order
func Stages() []Stage {
	return []Stage{
		StagePrequalify,
		StageWard,
		StageSubCounty,
		StageCounty,
		StageRegional,
		StageNational,
	}
}

// Index returns the position of the stage in tournament order, or -1 if unknown
func (s Stage) Index() int {
	for i, stage := range Stages() {
		if stage == s {
			return i
		}
	}
	return -1
}

// Location places a player in the geographic bracket
type Location struct {
	Ward      string `json:"ward"`
	SubCounty string `json:"subCounty"`
	County    string `json:"county"`
	Region    string `json:"region"`
}

// Membership is set once a player buys a tier
type Membership struct {
	Tier       MembershipTier `json:"tier"`
	IsVerified bool           `json:"isVerified"`
}

// Stats holds league table figures for a player
type Stats struct {
	Rank     int `json:"rank"`
	Points   int `json:"points"`
	Played   int `json:"played"`
	Won      int `json:"won"`
	Drawn    int `json:"drawn"`
	Lost     int `json:"lost"`
	GoalDiff int `json:"goalDiff"`
}

// Player is a tournament participant, either a registrant or a synthetic
// cohort member
type Player struct {
	ID         PlayerID    `json:"id"`
	Name       string      `json:"name"`
	UserID     string      `json:"userId"` // in-game handle, case-insensitive for login
	Photo      string      `json:"photo,omitempty"`
	Location   Location    `json:"location"`
	Stage      Stage       `json:"stage"`
	Membership *Membership `json:"membership,omitempty"`
	Stats      Stats       `json:"stats"`
}

// IsVerified reports whether the player holds a verified membership
func (p *Player) IsVerified() bool {
	return p.Membership != nil && p.Membership.IsVerified
}
