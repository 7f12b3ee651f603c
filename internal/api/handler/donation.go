package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

// DonationHandler handles the donations wall
type DonationHandler struct{}

// NewDonationHandler creates a new donation handler
func NewDonationHandler() *DonationHandler {
	return &DonationHandler{}
}

// List handles GET /api/v1/donations?recent=n
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	recentN := 0
	if v := r.URL.Query().Get("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("recent must be a non-negative number"))
			return
		}
		recentN = n
	}

	engine := middleware.MustGetEngine(r.Context())
	ctx := r.Context()

	wall, err := engine.Donations.Wall(ctx)
	if err != nil {
		WriteError(w, err)
		return
	}
	recent, err := engine.Donations.Recent(ctx, recentN)
	if err != nil {
		WriteError(w, err)
		return
	}
	total, err := engine.Donations.Total(ctx)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DonationsResponse{Wall: wall, Recent: recent, Total: total})
}

// Donate handles POST /api/v1/donations
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req request.DonateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	donation, err := engine.Donations.Donate(r.Context(), req.Name, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.DonationResponse{Donation: *donation})
}
