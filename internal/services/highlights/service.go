package highlights

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/repository"
)

const (
	placeholderVideoURL = "#"

	// DefaultThumbnailURL is used when a post has no thumbnail
	DefaultThumbnailURL = "https://images.unsplash.com/photo-1574629810360-7efbbe195018?q=80&w=1000&auto=format&fit=crop"
)

// Input is a highlight submitted by the logged-in player
type Input struct {
	Title        string
	Description  string
	ThumbnailURL string
	Category     model.HighlightCategory
}

// Service manages the highlights feed
type Service struct {
	repo   *repository.Repository
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new highlights Service
func New(repo *repository.Repository, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Post adds a highlight authored by the session player to the top of the feed
func (s *Service) Post(ctx context.Context, in Input) (*model.Highlight, error) {
	author, err := s.repo.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if author == nil {
		return nil, model.ErrNoSession
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrInvalidHighlight)
	}
	if !in.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", model.ErrInvalidHighlight, in.Category)
	}
	thumbnail := strings.TrimSpace(in.ThumbnailURL)
	if thumbnail == "" {
		thumbnail = DefaultThumbnailURL
	}

	feed, err := s.repo.Highlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading highlights: %w", err)
	}

	now := s.clock.Now()
	highlight := model.Highlight{
		ID:             nextID(feed, now.UnixMilli()),
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		VideoURL:       placeholderVideoURL,
		ThumbnailURL:   thumbnail,
		AuthorName:     author.Name,
		AuthorID:       author.UserID,
		AuthorVerified: author.IsVerified(),
		Category:       in.Category,
		CreatedAt:      now.UTC(),
	}

	feed = append([]model.Highlight{highlight}, feed...)
	if err := s.repo.Commit(ctx, repository.HighlightsChange(feed)); err != nil {
		return nil, fmt.Errorf("saving highlight: %w", err)
	}

	s.logger.InfoContext(ctx, "highlight posted",
		slog.String("highlight_id", highlight.ID),
		slog.String("author_id", highlight.AuthorID),
		slog.String("category", string(highlight.Category)),
	)
	return &highlight, nil
}

// nextID returns h_<millis>, stepping millis forward past ids already in the feed
func nextID(feed []model.Highlight, millis int64) string {
	for ; ; millis++ {
		id := fmt.Sprintf("h_%d", millis)
		if !slices.ContainsFunc(feed, func(h model.Highlight) bool { return h.ID == id }) {
			return id
		}
	}
}

// List returns the feed newest first. An empty category lists everything.
func (s *Service) List(ctx context.Context, category model.HighlightCategory) ([]model.Highlight, error) {
	feed, err := s.repo.Highlights(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return feed, nil
	}

	filtered := []model.Highlight{}
	for _, h := range feed {
		if h.Category == category {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
