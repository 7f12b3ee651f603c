package model

import "time"

// HighlightCategory classifies a highlight clip
type HighlightCategory string

const (
	CategoryGoal      HighlightCategory = "Goal"
	CategoryTackle    HighlightCategory = "Tackle"
	CategorySkill     HighlightCategory = "Skill"
	CategoryFullMatch HighlightCategory = "Full Match"
)

// IsValid reports whether c is a known category
func (c HighlightCategory) IsValid() bool {
	switch c {
	case CategoryGoal, CategoryTackle, CategorySkill, CategoryFullMatch:
		return true
	}
	return false
}

// Highlight is a clip posted to the highlights feed
type Highlight struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	VideoURL       string            `json:"videoUrl"`
	ThumbnailURL   string            `json:"thumbnailUrl"`
	AuthorName     string            `json:"authorName"`
	AuthorID       string            `json:"authorId"`
	AuthorVerified bool              `json:"authorVerified"`
	Views          int               `json:"views"`
	Category       HighlightCategory `json:"category"`
	CreatedAt      time.Time         `json:"timestamp"`
}
