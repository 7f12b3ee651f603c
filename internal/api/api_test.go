package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kefmc/tournament-engine/internal/api"
	"github.com/kefmc/tournament-engine/internal/api/apierr"
	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/factory"
	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/services/standings"
)

const adminKey = "let-me-in"

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Engines:      app,
		AdminKeyHash: string(hash),
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func device(id string) map[string]string {
	return map[string]string{"X-Device-ID": id}
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func (ts *testServer) register(t *testing.T, dev, userID, ward string) model.Player {
	t.Helper()
	body := map[string]string{"fullName": "Kevin Mwangi", "userId": userID, "ward": ward}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", body, device(dev))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.PlayerResponse](t, rr).Player
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	player := ts.register(t, "d1", "K_MWA", "Kibera")
	assert.Equal(t, "K_MWA", player.UserID)
	assert.Equal(t, 80, player.Stats.Rank)
	assert.Equal(t, model.StagePrequalify, player.Stage)
	assert.Equal(t, "Nairobi", player.Location.SubCounty)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, player.ID, decode[response.PlayerResponse](t, rr).Player.ID)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register",
		map[string]string{"fullName": "K", "userId": "K", "ward": "Atlantis"}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/players/register", nil, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMeWithoutSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, device("fresh"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeNoSession, errorCode(t, rr))
}

func TestLogoutAndLogin(t *testing.T) {
	ts := newTestServer(t)
	player := ts.register(t, "d1", "K_MWA", "Kibera")

	rr := ts.request(http.MethodPost, "/api/v1/players/logout", nil, device("d1"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, device("d1"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{"userId": "nobody"}, device("d1"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{"userId": "k_mwa"}, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, player.ID, decode[response.PlayerResponse](t, rr).Player.ID)

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDevicesAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "d1", "K_MWA", "Kibera")

	rr := ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{"userId": "K_MWA"}, device("d2"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInvalidDeviceHeader(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, device("not a device/../"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScheduleAndCompletion(t *testing.T) {
	ts := newTestServer(t)
	player := ts.register(t, "d1", "K_MWA", "Kibera")

	rr := ts.request(http.MethodGet, "/api/v1/players/me/schedule", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	sched := decode[response.ScheduleResponse](t, rr)
	require.Len(t, sched.Entries, 6)
	assert.Zero(t, sched.Completed)
	for _, e := range sched.Entries {
		assert.Equal(t, model.MatchUpcoming, e.Status)
		assert.NotEqual(t, "QUEUING", e.OpponentID)
	}

	entryID := "match_" + string(player.ID) + "_2"
	rr = ts.request(http.MethodPost, "/api/v1/players/me/schedule/"+entryID+"/complete", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.MatchCompleted, decode[response.EntryResponse](t, rr).Entry.Status)

	rr = ts.request(http.MethodGet, "/api/v1/players/me/schedule", nil, device("d1"))
	assert.Equal(t, 1, decode[response.ScheduleResponse](t, rr).Completed)

	rr = ts.request(http.MethodPost, "/api/v1/players/me/schedule/match_x_9/complete", nil, device("d1"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeMatchNotFound, errorCode(t, rr))
}

func TestMembershipUpgrade(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/membership/tiers", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[response.TiersResponse](t, rr).Tiers, 4)

	// no session: silent no-op
	rr = ts.request(http.MethodPost, "/api/v1/membership/upgrade", map[string]string{"tier": "Gold"}, device("d1"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	player := ts.register(t, "d1", "K_MWA", "Kibera")

	rr = ts.request(http.MethodPost, "/api/v1/membership/upgrade", map[string]string{"tier": "Diamond"}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownTier, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/membership/upgrade", map[string]string{"tier": "gold"}, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	upgraded := decode[response.PlayerResponse](t, rr).Player
	require.NotNil(t, upgraded.Membership)
	assert.Equal(t, model.TierGold, upgraded.Membership.Tier)
	assert.True(t, upgraded.Membership.IsVerified)
	assert.Equal(t, player.ID, upgraded.ID)
}

func TestWardsAndStandings(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/wards", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	wards := decode[response.WardsResponse](t, rr)
	assert.Contains(t, wards.Wards, "Kibera")
	assert.Contains(t, wards.SubCounties, "Lang'ata")

	ts.register(t, "d1", "K_MWA", "Kibera")

	rr = ts.request(http.MethodGet, "/api/v1/wards/Kibera/standings", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	table := decode[response.StandingsResponse](t, rr)
	require.Len(t, table.Standings, 80)
	for i := 1; i < len(table.Standings); i++ {
		assert.GreaterOrEqual(t, table.Standings[i-1].Stats.Points, table.Standings[i].Stats.Points)
	}

	rr = ts.request(http.MethodGet, "/api/v1/wards/Atlantis/standings", nil, device("d1"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnknownWard, errorCode(t, rr))
}

func TestDonations(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/donations", map[string]any{"amount": 0}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/donations", map[string]any{"amount": 1_000_001}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/donations", map[string]any{"amount": 2500}, device("d1"))
	require.Equal(t, http.StatusCreated, rr.Code)
	donation := decode[response.DonationResponse](t, rr).Donation
	assert.Equal(t, "Anonymous Patriot", donation.Name)
	assert.Equal(t, model.TierGold, donation.Tier)

	rr = ts.request(http.MethodPost, "/api/v1/donations", map[string]any{"name": "Wanjiku", "amount": 100}, device("d1"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/donations", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	wall := decode[response.DonationsResponse](t, rr)
	assert.Equal(t, 2600, wall.Total)
	require.Len(t, wall.Wall, 2)
	assert.Equal(t, 2500, wall.Wall[0].Amount)
	assert.Len(t, wall.Recent, 2)

	rr = ts.request(http.MethodGet, "/api/v1/donations?recent=abc", nil, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHighlights(t *testing.T) {
	ts := newTestServer(t)
	post := map[string]string{"title": "Screamer", "category": "Goal"}

	rr := ts.request(http.MethodPost, "/api/v1/highlights", post, device("d1"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	ts.register(t, "d1", "K_MWA", "Kibera")

	rr = ts.request(http.MethodPost, "/api/v1/highlights", map[string]string{"title": "x", "category": "Dance"}, device("d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/highlights", post, device("d1"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "K_MWA", decode[response.HighlightResponse](t, rr).Highlight.AuthorID)

	rr = ts.request(http.MethodGet, "/api/v1/highlights?category=Goal", nil, device("d1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[response.HighlightsResponse](t, rr).Highlights, 1)

	rr = ts.request(http.MethodGet, "/api/v1/highlights?category=Skill", nil, device("d1"))
	assert.Empty(t, decode[response.HighlightsResponse](t, rr).Highlights)
}

func TestAdminRequiresKey(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "d1", "K_MWA", "Kibera")

	rr := ts.request(http.MethodGet, "/api/v1/admin/overview", nil, device("d1"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeForbidden, errorCode(t, rr))

	headers := device("d1")
	headers["X-Admin-Key"] = "wrong"
	rr = ts.request(http.MethodGet, "/api/v1/admin/overview", nil, headers)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	headers["X-Admin-Key"] = adminKey
	rr = ts.request(http.MethodGet, "/api/v1/admin/overview", nil, headers)
	require.Equal(t, http.StatusOK, rr.Code)
	overview := decode[standings.Overview](t, rr)
	assert.Equal(t, 80, overview.TotalPlayers)
	assert.Equal(t, 4000, overview.RevenueKES)
	assert.Equal(t, 1, overview.ActiveWards)

	rr = ts.request(http.MethodGet, "/api/v1/admin/players", nil, headers)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 80, decode[response.PlayersResponse](t, rr).Total)
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	router := api.NewRouter(api.RouterConfig{Logger: slog.Default(), Engines: app})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/overview", nil)
	req.Header.Set("X-Admin-Key", adminKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
