package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/pkg/ctxutil"
)

// RequestID ensures every request carries an X-Request-Id, generating one
// when the caller did not supply it, and stores it in the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
