package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/model"
)

// WardHandler handles ward lists and league tables
type WardHandler struct{}

// NewWardHandler creates a new ward handler
func NewWardHandler() *WardHandler {
	return &WardHandler{}
}

// List handles GET /api/v1/wards
func (h *WardHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.WardsResponse{
		Wards:       model.Wards,
		SubCounties: model.SubCounties,
	})
}

// Standings handles GET /api/v1/wards/{ward}/standings
func (h *WardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	ward := mux.Vars(r)["ward"]

	engine := middleware.MustGetEngine(r.Context())
	table, err := engine.Standings.Ward(r.Context(), ward)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsResponse{Ward: ward, Standings: table})
}
