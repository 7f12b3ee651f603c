package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/services/highlights"
)

// HighlightHandler handles the highlights feed
type HighlightHandler struct{}

// NewHighlightHandler creates a new highlight handler
func NewHighlightHandler() *HighlightHandler {
	return &HighlightHandler{}
}

// List handles GET /api/v1/highlights?category=Goal
func (h *HighlightHandler) List(w http.ResponseWriter, r *http.Request) {
	category := model.HighlightCategory(r.URL.Query().Get("category"))
	if category == "All" {
		category = ""
	}
	if category != "" && !category.IsValid() {
		WriteError(w, NewInvalidRequestError("unknown category"))
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	feed, err := engine.Highlights.List(r.Context(), category)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HighlightsResponse{Highlights: feed})
}

// Post handles POST /api/v1/highlights
func (h *HighlightHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req request.PostHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	highlight, err := engine.Highlights.Post(r.Context(), highlights.Input{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Category:     model.HighlightCategory(req.Category),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.HighlightResponse{Highlight: *highlight})
}
