package cohort

import (
	"fmt"
	"strings"

	"github.com/kefmc/tournament-engine/internal/dependencies/random"
	"github.com/kefmc/tournament-engine/internal/model"
)

const (
	// PopulationFloor is the ward population below which a registration
	// triggers seeding
	PopulationFloor = 50
	// BatchSize is the number of synthetic players created per seeding
	BatchSize = 79
	// RegistrantRank is the rank a new registrant starts at, directly after
	// a full seeded batch
	RegistrantRank = 80

	maxPoints   = 15
	maxPlayed   = 5
	maxHandleNo = 999
)

var seedNames = []string{
	"Musa O.", "Jane W.", "Kimani E.", "Otieno J.", "Wambui M.", "Mutua S.",
	"Juma K.", "Achieng L.", "Maina D.", "Nyambura S.", "Kariuki P.", "Hassan A.",
	"Omar F.", "Nanjala R.", "Kibet G.", "Chepkirui E.", "Waweru N.", "Mokeira V.",
	"Kamau S.", "Mwangi J.", "Njuguna B.", "Omondi R.", "Oduor C.", "Okoth M.",
	"Saitoti L.", "Leina P.", "Nekesa F.", "Wekesa B.", "Kiplagat J.", "Cheruiyot D.",
}

// SeedNames returns the name stems synthetic players are drawn from
func SeedNames() []string {
	out := make([]string, len(seedNames))
	copy(out, seedNames)
	return out
}

// Seeder fills sparse wards with synthetic opponents
type Seeder struct {
	random random.Random
}

// New creates a new Seeder
func New(random random.Random) *Seeder {
	return &Seeder{random: random}
}

// WardPopulation counts roster players located in ward
func WardPopulation(roster []model.Player, ward string) int {
	n := 0
	for _, p := range roster {
		if p.Location.Ward == ward {
			n++
		}
	}
	return n
}

// Seed returns a batch of synthetic players for ward, or nil when the ward
// already has PopulationFloor players. Ids are deterministic per ward, so a
// second batch for the same ward repeats them.
func (s *Seeder) Seed(roster []model.Player, ward, subCounty string) []model.Player {
	if WardPopulation(roster, ward) >= PopulationFloor {
		return nil
	}
	if subCounty == "" {
		subCounty = model.DefaultArea
	}

	batch := make([]model.Player, 0, BatchSize)
	for i := range BatchSize {
		stem := random.Pick(s.random, seedNames)
		initial := random.Letter(s.random)
		handle := strings.ToUpper(strings.Fields(stem)[0])

		batch = append(batch, model.Player{
			ID:     model.PlayerID(fmt.Sprintf("seed_%s_%d", ward, i)),
			Name:   fmt.Sprintf("%s %c.", stem, initial),
			UserID: fmt.Sprintf("%s_%d", handle, s.random.Intn(maxHandleNo)),
			Location: model.Location{
				Ward:      ward,
				SubCounty: subCounty,
				County:    model.DefaultArea,
				Region:    model.DefaultArea,
			},
			Stage: model.StagePrequalify,
			Stats: model.Stats{
				Rank:   i + 1,
				Points: s.random.Intn(maxPoints),
				Played: s.random.Intn(maxPlayed),
			},
		})
	}
	return batch
}
