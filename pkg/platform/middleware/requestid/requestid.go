// Package requestid assigns each request a UUID so log lines, traces, and
// error reports across services can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"stackpad/pkg/requestcontext"
)

// Header is the response header carrying the request ID back to the client.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID when present (so IDs survive the
// web app's proxy hop) and generates a fresh UUID otherwise.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
