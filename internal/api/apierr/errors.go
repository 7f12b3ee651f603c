package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kefmc/tournament-engine/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodePlayerNotFound = "PLAYER_NOT_FOUND"
	CodeNoSession      = "NO_SESSION"
	CodeUnknownTier    = "UNKNOWN_TIER"
	CodeUnknownWard    = "UNKNOWN_WARD"
	CodeMatchNotFound  = "MATCH_NOT_FOUND"
	CodeForbidden      = "FORBIDDEN"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, verr.Field + " " + verr.Reason}}
	case errors.Is(err, model.ErrInvalidRegistration),
		errors.Is(err, model.ErrInvalidDonation),
		errors.Is(err, model.ErrInvalidHighlight):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeNoSession, "No player is logged in"}}
	case errors.Is(err, model.ErrUnknownTier):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownTier, "Unknown membership tier"}}
	case errors.Is(err, model.ErrUnknownWard):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownWard, "Unknown ward"}}
	case errors.Is(err, model.ErrScheduleEntryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found in schedule"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin key required"}}
}

// NewInternalError creates an internal server error. A non-empty requestID
// is quoted in the message so callers can report it.
func NewInternalError(requestID string) error {
	msg := "Internal server error"
	if requestID != "" {
		msg += " (request " + requestID + ")"
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, msg}}
}
