// Package web is the frontend app: embedded static assets plus a reverse
// proxy so the browser talks to one origin and /api/* reaches the API
// service by name on the container network.
package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"stackpad/internal/platform/health"
	pkghttputil "stackpad/pkg/httputil"
)

//go:embed assets
var assetsFS embed.FS

// Handler serves the frontend.
type Handler struct {
	health *health.Handler
	proxy  *httputil.ReverseProxy
	static http.Handler
	logger *slog.Logger
}

// New builds the handler. apiBaseURL is where /api/* requests are forwarded,
// e.g. http://api:8081.
func New(apiBaseURL string, healthHandler *health.Handler, logger *slog.Logger) (*Handler, error) {
	target, err := url.Parse(apiBaseURL)
	if err != nil {
		return nil, err
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, "/api")
			if pr.Out.URL.Path == "" {
				pr.Out.URL.Path = "/"
			}
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "api proxy error", "error", err, "path", r.URL.Path)
			pkghttputil.WriteError(w, pkghttputil.NewError(pkghttputil.CodeUnavailable, "api unreachable"))
		},
	}

	staticRoot, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, err
	}

	return &Handler{
		health: healthHandler,
		proxy:  proxy,
		static: http.FileServerFS(staticRoot),
		logger: logger,
	}, nil
}

// Register attaches the frontend routes to the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.health.Live)
	r.Get("/readyz", h.health.Ready)
	r.Handle("/api/*", h.proxy)
	r.Handle("/*", h.static)
}
