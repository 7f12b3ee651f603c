package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/model"
)

// MembershipHandler handles the tier catalogue and upgrades
type MembershipHandler struct{}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler() *MembershipHandler {
	return &MembershipHandler{}
}

// Tiers handles GET /api/v1/membership/tiers
func (h *MembershipHandler) Tiers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TiersResponse{Tiers: model.TierCatalogue()})
}

// Upgrade handles POST /api/v1/membership/upgrade. Without a session nothing
// changes and the response is 204.
func (h *MembershipHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	var req request.UpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	tier, err := model.ParseTier(req.Tier)
	if err != nil {
		WriteError(w, err)
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	player, err := engine.Membership.Upgrade(r.Context(), tier)
	if err != nil {
		WriteError(w, err)
		return
	}
	if player == nil {
		response.NoContent(w)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{Player: *player})
}
