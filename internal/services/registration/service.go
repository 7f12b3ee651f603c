package registration

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
	"github.com/kefmc/tournament-engine/internal/services/cohort"
	"github.com/kefmc/tournament-engine/internal/services/schedule"
)

const instrumentation = "github.com/kefmc/tournament-engine/internal/services/registration"

// Service turns a registration form into a player, a seeded ward and a
// schedule
type Service struct {
	repo          *repository.Repository
	seeder        *cohort.Seeder
	clock         clock.Clock
	logger        *slog.Logger
	tracer        trace.Tracer
	registrations metric.Int64Counter
}

// New creates a new registration Service
func New(
	repo *repository.Repository,
	seeder *cohort.Seeder,
	clock clock.Clock,
	logger *slog.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) (*Service, error) {
	counter, err := mp.Meter(instrumentation).Int64Counter("kefmc.registrations",
		metric.WithDescription("Players registered"),
		metric.WithUnit("{player}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registrations counter: %w", err)
	}
	return &Service{
		repo:          repo,
		seeder:        seeder,
		clock:         clock,
		logger:        logger,
		tracer:        tp.Tracer(instrumentation),
		registrations: counter,
	}, nil
}

// Register creates a player from form and makes them the current session.
// When the ward is sparse a cohort of synthetic opponents is added first and
// the registrant's schedule is drawn from it. Roster, session and schedule
// are written together.
func (s *Service) Register(ctx context.Context, form model.Registration) (*model.Player, error) {
	form = form.Normalize()
	ctx, span := s.tracer.Start(ctx, "Registration.Register",
		trace.WithAttributes(
			attribute.String("user_id", form.UserID),
			attribute.String("ward", form.Ward),
		),
	)
	defer span.End()

	if err := form.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	subCounty := form.SubCounty
	if subCounty == "" {
		subCounty = model.DefaultArea
	}

	existing, err := s.repo.Roster(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	id, err := s.mintID(ctx, existing)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	player := model.Player{
		ID:     id,
		Name:   form.FullName,
		UserID: form.UserID,
		Location: model.Location{
			Ward:      form.Ward,
			SubCounty: subCounty,
			County:    model.DefaultArea,
			Region:    model.DefaultArea,
		},
		Stage: model.StagePrequalify,
		Stats: model.Stats{Rank: cohort.RegistrantRank},
	}

	seeded := s.seeder.Seed(existing, form.Ward, form.SubCounty)

	roster := make([]model.Player, 0, len(existing)+len(seeded)+1)
	roster = append(roster, existing...)
	roster = append(roster, seeded...)
	roster = append(roster, player)

	err = s.repo.Commit(ctx,
		repository.RosterChange(roster),
		repository.SessionChange(player),
		repository.ScheduleChange(player.ID, schedule.ForRegistration(player.ID, seeded)),
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("saving registration: %w", err)
	}

	s.registrations.Add(ctx, 1, metric.WithAttributes(attribute.String("ward", form.Ward)))
	s.logger.InfoContext(ctx, "player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("user_id", player.UserID),
		slog.String("ward", form.Ward),
		slog.Int("seeded", len(seeded)),
	)
	return &player, nil
}

// mintID returns u_<millis> for the current time, stepped forward one
// millisecond at a time until neither the roster nor a stored schedule
// already uses it.
func (s *Service) mintID(ctx context.Context, roster []model.Player) (model.PlayerID, error) {
	taken := make(map[model.PlayerID]struct{}, len(roster))
	for _, p := range roster {
		taken[p.ID] = struct{}{}
	}
	for n := clock.Millis(s.clock); ; n++ {
		id := model.PlayerID(fmt.Sprintf("u_%d", n))
		if _, ok := taken[id]; ok {
			continue
		}
		_, found, err := s.repo.Schedule(ctx, id)
		if err != nil {
			return "", fmt.Errorf("checking schedule for %s: %w", id, err)
		}
		if !found {
			return id, nil
		}
	}
}
