package http

import (
	"fmt"
	"net/http"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/logger"
	"joke-api/internal/repository"
)

// APIKeyHeader carries the caller's key for access logging and the rate
// limit reporter.
const APIKeyHeader = "X-API-Key"

// RecoveryMiddleware converts panics into a 500 with the fault text in the
// body, matching the generic error shape of the rest of the API.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "method", r.Method, "path", r.URL.Path, "panic", rec)
				writeError(w, http.StatusInternalServerError, fmt.Errorf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware appends one access log row per keyed request. A failed
// write is logged and the request proceeds; the audit trail is best-effort.
func AccessLogMiddleware(accessLogs repository.AccessLogRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get(APIKeyHeader); key != "" {
				entry := &domain.AccessLog{
					APIKey:     key,
					Endpoint:   r.URL.Path,
					AccessTime: time.Now(),
				}
				if err := accessLogs.Record(r.Context(), entry); err != nil {
					logger.Warn("Failed to record access log", "path", r.URL.Path, "error", err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
