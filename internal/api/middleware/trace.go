package middleware

import (
	"log/slog"
	"net/http"

	"github.com/santosferr/ledger-api/internal/api/shared"
	"github.com/santosferr/ledger-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and logs request arrival.
// Apply it early in the chain so every downstream handler and error response
// can carry the same trace ID. A trace-scoped logger is stored alongside it,
// so code resolving its logger from the context tags its lines with the
// request's trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := slog.With(slog.String("trace_id", shared.GetTraceID(ctx)))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
