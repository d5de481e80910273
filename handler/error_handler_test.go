package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/postapi/handler"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{name: "bind failure", err: fmt.Errorf("bind: %w", errors.New("bad json")), status: http.StatusInternalServerError, level: "ERROR"},
		{name: "nil response", err: handler.ErrNilResponse, status: http.StatusInternalServerError, level: "ERROR"},
		{name: "client error", err: handler.ErrNotFound, status: http.StatusNotFound, level: "WARN"},
		{name: "validation error", err: handler.ValidationError{"x": {"bad"}}, status: http.StatusUnprocessableEntity, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := newBufferLogger()
			errorHandler := handler.NewErrorHandler(log)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/posts", nil)
			errorHandler(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
			assert.Contains(t, buf.String(), `"status_code":`+fmt.Sprint(tt.status))
			assert.Contains(t, buf.String(), `"path":"/posts"`)
			assert.Contains(t, buf.String(), `"component":"error_handler"`)
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	log, buf := newBufferLogger()
	rec := httptest.NewRecorder()

	handler.WriteError(log, rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, buf.String(), "connection refused")
}
