package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"stackpad/pkg/httputil"
	"stackpad/pkg/requestcontext"
)

type contextKeySubject struct{}

// Subject retrieves the authenticated subject from the context.
func Subject(ctx context.Context) string {
	if sub, ok := ctx.Value(contextKeySubject{}).(string); ok {
		return sub
	}
	return ""
}

// TokenValidator is the seam RequireAuth needs; *Service satisfies it.
type TokenValidator interface {
	Validate(tokenString string) (Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and puts the
// subject into the context for handlers.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				httputil.WriteError(w, httputil.NewError(httputil.CodeUnauthorized, "missing bearer token"))
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(r.Context()),
				)
				httputil.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeySubject{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
