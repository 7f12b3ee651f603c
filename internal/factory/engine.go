package factory

import (
	"log/slog"
	"sync"

	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
	"github.com/kefmc/tournament-engine/internal/dependencies/random"
	"github.com/kefmc/tournament-engine/internal/repository"
	"github.com/kefmc/tournament-engine/internal/services/cohort"
	"github.com/kefmc/tournament-engine/internal/services/donations"
	"github.com/kefmc/tournament-engine/internal/services/highlights"
	"github.com/kefmc/tournament-engine/internal/services/identity"
	"github.com/kefmc/tournament-engine/internal/services/membership"
	"github.com/kefmc/tournament-engine/internal/services/registration"
	"github.com/kefmc/tournament-engine/internal/services/schedule"
	"github.com/kefmc/tournament-engine/internal/services/standings"
	"github.com/kefmc/tournament-engine/internal/storage"
	"github.com/kefmc/tournament-engine/internal/telemetry"
)

// Engine is the tournament state of one device with every service wired
// over it
type Engine struct {
	Device string

	Identity     *identity.Service
	Registration *registration.Service
	Membership   *membership.Service
	Schedule     *schedule.Service
	Standings    *standings.Service
	Donations    *donations.Service
	Highlights   *highlights.Service

	mu *sync.Mutex
}

func newEngine(
	device string,
	store storage.Storage,
	mu *sync.Mutex,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	tel *telemetry.Provider,
) (*Engine, error) {
	logger = logger.With(slog.String("device", device))
	repo := repository.New(store, logger)

	registrationService, err := registration.New(repo, cohort.New(rnd), clk, logger,
		tel.TracerProvider, tel.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Device:       device,
		Identity:     identity.New(repo, logger, tel.TracerProvider),
		Registration: registrationService,
		Membership:   membership.New(repo, logger, tel.TracerProvider),
		Schedule:     schedule.New(repo, logger),
		Standings:    standings.New(repo, logger),
		Donations:    donations.New(repo, clk, logger),
		Highlights:   highlights.New(repo, clk, logger),
		mu:           mu,
	}, nil
}

// Do runs fn while holding the engine lock. Every operation on a device goes
// through here so read-modify-write cycles do not interleave.
func (e *Engine) Do(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}
