package middleware

import (
	"log/slog"
	"net/http"

	"forumhub/internal/api/shared"
	"forumhub/internal/platform/logger"
)

// TraceMiddleware attaches a trace ID to each request's context and a
// request-scoped logger carrying it, so errors and log lines across all
// layers can be correlated.
func TraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			requestLog := log.With(
				slog.String("trace_id", shared.GetTraceID(ctx)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx = logger.WithContext(ctx, requestLog)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
