package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kefmc/tournament-engine/internal/api/apierr"
	"github.com/kefmc/tournament-engine/internal/api/middleware"
	"github.com/kefmc/tournament-engine/internal/factory"
	basemiddleware "github.com/kefmc/tournament-engine/internal/middleware"
	"github.com/kefmc/tournament-engine/internal/testutil"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestRecoveryQuotesRequestID(t *testing.T) {
	h := basemiddleware.RequestID()(middleware.Recovery(testutil.NopLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(basemiddleware.RequestIDHeader, "req-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeInternalError, apiErr.Code)
	assert.Contains(t, apiErr.Message, "req-7")
}

func TestDeviceResolvesEngine(t *testing.T) {
	app := factory.NewTestApp()

	var device string
	h := middleware.Device(app, testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		device = middleware.MustGetEngine(r.Context()).Device
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.DeviceHeader, "phone-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "phone-1", device)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, factory.DefaultDevice, device)
}

func TestDeviceRejectsMalformedID(t *testing.T) {
	called := false
	h := middleware.Device(factory.NewTestApp(), testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.DeviceHeader, "../etc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

type failingSource struct{}

func (failingSource) Engine(string) (*factory.Engine, error) {
	return nil, errors.New("backend down")
}

func TestDeviceEngineFailure(t *testing.T) {
	h := middleware.Device(failingSource{}, testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetEngineWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middleware.GetEngine(req.Context()))
	assert.Panics(t, func() { middleware.MustGetEngine(req.Context()) })
}

func TestAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	cases := []struct {
		name   string
		hash   string
		key    string
		status int
	}{
		{"matching key", string(hash), "open-sesame", http.StatusOK},
		{"wrong key", string(hash), "guess", http.StatusForbidden},
		{"missing key", string(hash), "", http.StatusForbidden},
		{"no hash configured", "", "open-sesame", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.key != "" {
				req.Header.Set(middleware.AdminKeyHeader, tc.key)
			}
			rr := httptest.NewRecorder()
			middleware.Admin(tc.hash)(ok).ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}
