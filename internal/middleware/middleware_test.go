package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kefmc/tournament-engine/internal/testutil"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestRequestIDKeepsCallerID(t *testing.T) {
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRecoveryUsesPanicHandler(t *testing.T) {
	var recovered any
	h := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, r *http.Request, err any) {
		recovered = err
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "boom", recovered)
}

func TestLoggingCapturesStatus(t *testing.T) {
	var status int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		status = w.(*ResponseWriter).Status()
	})

	rr := httptest.NewRecorder()
	Logging(testutil.NopLogger())(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, http.StatusCreated, status)
}

func TestRecoveryLogsRequestID(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	h := RequestID()(Recovery(logger, func(w http.ResponseWriter, r *http.Request, err any) {
		w.WriteHeader(http.StatusInternalServerError)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLoggingLevelFollowsStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, `"level":"INFO"`},
		{http.StatusNotFound, `"level":"INFO"`},
		{http.StatusServiceUnavailable, `"level":"ERROR"`},
	}

	for _, tc := range cases {
		logger, buf := testutil.CaptureLogger()
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		Logging(logger)(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players/me", nil))

		assert.Contains(t, buf.String(), tc.level, "status %d", tc.status)
		assert.Contains(t, buf.String(), `"path":"/players/me"`)
	}
}
