package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/postapi/pkg/logger"
)

// Check reports whether one dependency is ready to serve traffic.
type Check func(ctx context.Context) error

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ALIVE")
	}
}

// ReadinessHandler runs every check with the request context and answers
// 200 "READY" when all pass, or 503 "NOT_READY" on the first failure.
func ReadinessHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed",
					logger.Error(err),
					logger.Component("healthcheck"),
				)
				writeStatus(w, http.StatusServiceUnavailable, "NOT_READY")
				return
			}
		}
		writeStatus(w, http.StatusOK, "READY")
	}
}

func writeStatus(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
