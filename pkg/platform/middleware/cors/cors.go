// Package cors implements Cross-Origin Resource Sharing for the shared
// server factory.
package cors

import (
	"net/http"
	"strconv"
	"strings"
)

// Config controls which origins may call the service. The zero value allows
// nothing; AllowedOrigins containing "*" allows everything.
type Config struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int // seconds a preflight response may be cached; 0 means 600
}

// Middleware handles CORS for the configured origins.
type Middleware struct {
	allowedOrigins   []string
	allowAll         bool
	allowCredentials bool
	maxAge           int
}

// New builds a CORS middleware from the config.
func New(cfg Config) *Middleware {
	allowAll := false
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	maxAge := cfg.MaxAge
	if maxAge == 0 {
		maxAge = 600
	}
	return &Middleware{
		allowedOrigins:   cfg.AllowedOrigins,
		allowAll:         allowAll,
		allowCredentials: cfg.AllowCredentials,
		maxAge:           maxAge,
	}
}

// Handler returns the CORS middleware handler. The allowed origin is echoed
// back (never "*" verbatim when credentials are on) with Vary: Origin so
// caches keep per-origin responses apart.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && (m.allowAll || m.isOriginAllowed(origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.maxAge))
			if m.allowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}

		// Preflight requests short-circuit here whether or not the origin
		// was allowed; disallowed origins simply get no CORS headers.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) isOriginAllowed(origin string) bool {
	for _, allowed := range m.allowedOrigins {
		if allowed == origin {
			return true
		}
		// ".example.com" entries match any subdomain.
		if strings.HasPrefix(allowed, ".") && strings.HasSuffix(origin, allowed) {
			return true
		}
	}
	return false
}
