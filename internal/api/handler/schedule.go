package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

// ScheduleHandler handles the session player's match schedule
type ScheduleHandler struct{}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// Get handles GET /api/v1/players/me/schedule
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	player, ok := sessionPlayer(w, r)
	if !ok {
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	entries, err := engine.Schedule.Get(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScheduleFromEntries(player.ID, entries))
}

// Complete handles POST /api/v1/players/me/schedule/{entry_id}/complete
func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	player, ok := sessionPlayer(w, r)
	if !ok {
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	entry, err := engine.Schedule.Complete(r.Context(), player.ID, mux.Vars(r)["entry_id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EntryResponse{Entry: *entry})
}
