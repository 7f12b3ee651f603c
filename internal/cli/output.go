package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/services/standings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.PlayerResponse:
		o.printPlayer(v.Player)
	case response.PlayersResponse:
		o.printPlayers(v)
	case response.ScheduleResponse:
		o.printSchedule(v)
	case response.EntryResponse:
		o.printEntry(v.Entry)
	case response.TiersResponse:
		o.printTiers(v)
	case response.WardsResponse:
		o.printWards(v)
	case response.StandingsResponse:
		o.printStandings(v)
	case response.DonationResponse:
		o.printDonation(v.Donation)
	case response.DonationsResponse:
		o.printDonations(v)
	case response.HighlightResponse:
		o.printHighlight(v.Highlight)
	case response.HighlightsResponse:
		for _, h := range v.Highlights {
			o.printHighlight(h)
		}
	case standings.Overview:
		o.printOverview(v)
	case HealthResult:
		fmt.Printf("Status: %s (%dms)\n", v.Status, v.LatencyMS)
		fmt.Printf("Device: %s\n", v.Device)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult is the health response plus what the CLI observed
type HealthResult struct {
	Status    string `json:"status"`
	Device    string `json:"device,omitempty"`
	LatencyMS int64  `json:"latencyMs"`
}

func (o *Output) printPlayer(p model.Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.UserID)
	fmt.Printf("ID: %s\n", p.ID)
	fmt.Printf("Ward: %s, %s\n", p.Location.Ward, p.Location.SubCounty)
	fmt.Printf("Stage: %s\n", p.Stage)
	fmt.Printf("Rank: %d  Points: %d  Played: %d\n", p.Stats.Rank, p.Stats.Points, p.Stats.Played)
	if p.Membership != nil {
		verified := ""
		if p.Membership.IsVerified {
			verified = " [verified]"
		}
		fmt.Printf("Membership: %s%s\n", p.Membership.Tier, verified)
	}
}

func (o *Output) printPlayers(r response.PlayersResponse) {
	fmt.Printf("Players (%d):\n", r.Total)
	for _, p := range r.Players {
		fmt.Printf("  %-16s %-24s %-14s %s\n", p.ID, p.Name, p.UserID, p.Location.Ward)
	}
}

func (o *Output) printSchedule(s response.ScheduleResponse) {
	fmt.Printf("Schedule for %s (%d/%d played):\n", s.PlayerID, s.Completed, s.Total)
	for _, e := range s.Entries {
		o.printEntry(e)
	}
}

func (o *Output) printEntry(e model.ScheduleEntry) {
	fmt.Printf("  %-12s vs %-20s %-10s %s\n", e.TimeSlot, e.OpponentName, e.Status, e.ID)
}

func (o *Output) printTiers(r response.TiersResponse) {
	for _, t := range r.Tiers {
		fmt.Printf("%s - KES %d/month\n", t.Tier, t.PriceKES)
		for _, b := range t.Benefits {
			fmt.Printf("  - %s\n", b)
		}
	}
}

func (o *Output) printWards(r response.WardsResponse) {
	fmt.Printf("Wards: %s\n", strings.Join(r.Wards, ", "))
	fmt.Printf("Sub-Counties: %s\n", strings.Join(r.SubCounties, ", "))
}

func (o *Output) printStandings(r response.StandingsResponse) {
	fmt.Printf("%s Ward Table:\n", r.Ward)
	fmt.Printf("  %3s  %-24s %-14s %3s %3s\n", "#", "Player", "User", "P", "Pts")
	for i, s := range r.Standings {
		mark := ""
		if s.Qualified {
			mark = " Q"
		}
		fmt.Printf("  %3d  %-24s %-14s %3d %3d%s\n", i+1, s.Name, s.UserID, s.Stats.Played, s.Stats.Points, mark)
	}
}

func (o *Output) printDonation(d model.Donation) {
	fmt.Printf("  %-24s KES %-8d %-9s %s\n", d.Name, d.Amount, d.Tier, d.Date.Format("2006-01-02"))
}

func (o *Output) printDonations(r response.DonationsResponse) {
	fmt.Printf("Total raised: KES %d\n", r.Total)
	fmt.Println("Wall:")
	for _, d := range r.Wall {
		o.printDonation(d)
	}
	if len(r.Recent) > 0 {
		fmt.Println("Recent:")
		for _, d := range r.Recent {
			o.printDonation(d)
		}
	}
}

func (o *Output) printHighlight(h model.Highlight) {
	verified := ""
	if h.AuthorVerified {
		verified = " [verified]"
	}
	fmt.Printf("[%s] %s by %s%s\n", h.Category, h.Title, h.AuthorName, verified)
	if h.Description != "" {
		fmt.Printf("  %s\n", h.Description)
	}
}

func (o *Output) printOverview(v standings.Overview) {
	fmt.Printf("Total players: %d\n", v.TotalPlayers)
	fmt.Printf("Revenue: KES %d\n", v.RevenueKES)
	fmt.Printf("Active wards: %d\n", v.ActiveWards)
	for _, offer := range model.TierCatalogue() {
		fmt.Printf("  %s members: %d\n", offer.Tier, v.Members[offer.Tier])
	}
}
