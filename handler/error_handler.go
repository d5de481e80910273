package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/postapi/pkg/logger"
	"github.com/dmitrymomot/postapi/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler returns the catch-all error boundary used by Wrap.
//
// Binding failures, render failures and any other error that is not an
// HTTPError or ValidationError become a generic 500 JSON body. The original
// error is logged, never sent to the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		WriteError(log, ctx.ResponseWriter(), ctx.Request(), err)
	}
}

// WriteError logs err and renders it with JSONError.
func WriteError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	info := classifyError(err)
	logError(log, r, err, info)

	if renderErr := JSONError(err).Render(w, r); renderErr != nil {
		log.ErrorContext(r.Context(), "failed to render error response",
			logger.Error(renderErr),
			logger.Event("render_error"),
		)
	}
}

func defaultErrorHandler[C Context]() ErrorHandler[C] {
	return func(ctx C, err error) {
		WriteError(slog.Default(), ctx.ResponseWriter(), ctx.Request(), err)
	}
}
