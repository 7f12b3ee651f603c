package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kefmc/tournament-engine/internal/api/apierr"
	"github.com/kefmc/tournament-engine/internal/middleware"
)

// Recovery answers a panicking request with a JSON INTERNAL_ERROR that
// quotes the request id
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError(middleware.RequestIDFromContext(r.Context())))
	})
}
