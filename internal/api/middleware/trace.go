package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and attaches a
// trace-scoped logger for downstream handlers. Apply it early in the chain so
// every log line and error response of a request carries the same trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
