package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/postapi/pkg/logger"
)

// Recoverer is middleware that turns a panic anywhere below it into the
// generic 500 JSON response. http.ErrAbortHandler is re-panicked so the
// server can abort the connection as usual.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.ErrorContext(r.Context(), "recovered from panic",
					slog.String("stack", string(debug.Stack())),
					logger.Component("recoverer"),
				)
				WriteError(log, w, r, fmt.Errorf("%w: %v", ErrPanic, rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
