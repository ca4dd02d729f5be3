package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/pkg/ctxutil"
)

// Identity headers set by the trusted upstream gateway.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Roles"
	HeaderTenantID = "X-Tenant-Id"
)

// Principal builds the caller's principal from the gateway identity
// headers and the request Host, and stores it in the context. Requests
// without identity headers proceed as anonymous; the policy layer decides
// what anonymous callers may do. Malformed identity headers are rejected
// outright: a gateway never sends them, so they indicate tampering.
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := domain.Principal{Host: r.Host}

		if raw := r.Header.Get(HeaderUserID); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			p.UserID = id

			role := domain.Role(r.Header.Get(HeaderUserRole))
			if !role.IsValid() {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			p.Role = role

			if rawTenant := r.Header.Get(HeaderTenantID); rawTenant != "" {
				tenantID, err := uuid.Parse(rawTenant)
				if err != nil {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				p.TenantID = tenantID
			}
		}

		ctx := ctxutil.WithPrincipal(r.Context(), p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
