package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kefmc/tournament-engine/internal/api/handler"
	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/api/response"
	basemiddleware "github.com/kefmc/tournament-engine/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Engines middleware.EngineSource
	// AdminKeyHash is the bcrypt hash guarding /admin routes
	AdminKeyHash string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler()
	scheduleHandler := handler.NewScheduleHandler()
	membershipHandler := handler.NewMembershipHandler()
	wardHandler := handler.NewWardHandler()
	donationHandler := handler.NewDonationHandler()
	highlightHandler := handler.NewHighlightHandler()
	adminHandler := handler.NewAdminHandler()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(basemiddleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(basemiddleware.Logging(cfg.Logger))

	// Health check and static catalogues need no device state
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/membership/tiers", membershipHandler.Tiers).Methods(http.MethodGet)
	api.HandleFunc("/wards", wardHandler.List).Methods(http.MethodGet)

	device := api.NewRoute().Subrouter()
	device.Use(middleware.Device(cfg.Engines, cfg.Logger))

	// Player routes
	device.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	device.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)
	device.HandleFunc("/players/logout", playerHandler.Logout).Methods(http.MethodPost)
	device.HandleFunc("/players/me", playerHandler.GetMe).Methods(http.MethodGet)
	device.HandleFunc("/players/me/schedule", scheduleHandler.Get).Methods(http.MethodGet)
	device.HandleFunc("/players/me/schedule/{entry_id}/complete", scheduleHandler.Complete).Methods(http.MethodPost)

	device.HandleFunc("/membership/upgrade", membershipHandler.Upgrade).Methods(http.MethodPost)
	device.HandleFunc("/wards/{ward}/standings", wardHandler.Standings).Methods(http.MethodGet)

	device.HandleFunc("/donations", donationHandler.List).Methods(http.MethodGet)
	device.HandleFunc("/donations", donationHandler.Donate).Methods(http.MethodPost)
	device.HandleFunc("/highlights", highlightHandler.List).Methods(http.MethodGet)
	device.HandleFunc("/highlights", highlightHandler.Post).Methods(http.MethodPost)

	// Admin console (bcrypt-checked key)
	admin := device.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin(cfg.AdminKeyHash))
	admin.HandleFunc("/overview", adminHandler.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/players", adminHandler.Players).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
