// Package requestlog emits one structured log line per request.
package requestlog

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"stackpad/pkg/platform/middleware/metadata"
	"stackpad/pkg/requestcontext"
)

// Middleware logs method, path, status, size, duration, client IP, request ID,
// and the browser/OS parsed from the User-Agent. Client details come from the
// request itself so the middleware works with or without the metadata plugin
// in front of it.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			browser, osInfo := parseUserAgent(r.Header.Get("User-Agent"))
			logger.LogAttrs(r.Context(), slog.LevelInfo, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("client_ip", metadata.ClientIPFromRequest(r)),
				slog.String("request_id", requestcontext.RequestID(r.Context())),
				slog.String("browser", browser),
				slog.String("os", osInfo),
			)
		})
	}
}

func parseUserAgent(raw string) (browser, osInfo string) {
	if raw == "" {
		return "", ""
	}
	ua := useragent.New(raw)
	name, version := ua.Browser()
	if version != "" {
		browser = name + "/" + version
	} else {
		browser = name
	}
	return browser, ua.OS()
}
