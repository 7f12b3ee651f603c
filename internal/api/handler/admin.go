package handler

import (
	"net/http"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

// AdminHandler serves the admin console
type AdminHandler struct{}

// NewAdminHandler creates a new admin handler
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Overview handles GET /api/v1/admin/overview
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	engine := middleware.MustGetEngine(r.Context())
	overview, err := engine.Standings.Overview(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, overview)
}

// Players handles GET /api/v1/admin/players
func (h *AdminHandler) Players(w http.ResponseWriter, r *http.Request) {
	engine := middleware.MustGetEngine(r.Context())
	players, err := engine.Standings.Players(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersResponse{Players: players, Total: len(players)})
}
