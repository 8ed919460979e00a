// Package middleware carries the request-scoped HTTP middleware that the
// gorilla handler chain does not cover.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestID tags every request with an ID (caller-supplied or generated),
// echoes it in the response and logs start/completion with structured
// fields. Health checks are not logged.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		logger := slog.Default().With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		logger.Debug("request started")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		latency := time.Since(start)
		logger = logger.With("status", rec.status, "latency_ms", latency.Milliseconds())
		switch {
		case rec.status >= 500:
			logger.Error("request completed with server error")
		case rec.status >= 400:
			logger.Warn("request completed with client error")
		default:
			logger.Info("request completed")
		}
	})
}
