package middleware

import (
	"crypto/subtle"
	"net/http"
)

// HeaderAPIKey gates direct access to this service behind the shared
// gateway key.
const HeaderAPIKey = "X-Api-Key"

// APIKey returns middleware that rejects requests whose X-Api-Key does
// not match the configured key. An empty configured key is a deployment
// error and fails every request with 500 rather than silently opening
// the service.
func APIKey(key string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
