package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/model"
)

// PlayerHandler handles registration and the device session
type PlayerHandler struct{}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler() *PlayerHandler {
	return &PlayerHandler{}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	player, err := engine.Registration.Register(r.Context(), model.Registration{
		FullName:  req.FullName,
		UserID:    req.UserID,
		Ward:      req.Ward,
		SubCounty: req.SubCounty,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerResponse{Player: *player})
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.UserID == "" {
		WriteError(w, NewInvalidRequestError("userId is required"))
		return
	}

	engine := middleware.MustGetEngine(r.Context())
	player, err := engine.Identity.Login(r.Context(), req.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{Player: *player})
}

// Logout handles POST /api/v1/players/logout
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	engine := middleware.MustGetEngine(r.Context())
	if err := engine.Identity.Logout(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	player, ok := sessionPlayer(w, r)
	if !ok {
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerResponse{Player: *player})
}

// sessionPlayer loads the session player, writing NO_SESSION when there is none
func sessionPlayer(w http.ResponseWriter, r *http.Request) (*model.Player, bool) {
	engine := middleware.MustGetEngine(r.Context())
	player, err := engine.Identity.LoadSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return nil, false
	}
	if player == nil {
		WriteError(w, model.ErrNoSession)
		return nil, false
	}
	return player, true
}
