package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/kefmc/tournament-engine/internal/api/apierr"
)

// AdminKeyHeader carries the admin key
const AdminKeyHeader = "X-Admin-Key"

// Admin allows the request through only when X-Admin-Key matches keyHash,
// a bcrypt hash. An empty keyHash rejects every request.
func Admin(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if keyHash == "" || key == "" ||
				bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
