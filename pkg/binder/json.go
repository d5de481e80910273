package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxSize      int64
	allowUnknown bool
}

// WithMaxSize limits the request body to n bytes. Non-positive values are ignored.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithAllowUnknownFields makes the binder ignore object keys that match no
// field of the target instead of failing.
func WithAllowUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknown = true
	}
}

// JSON creates a strict JSON binder.
//
// The body must be a single JSON value and Content-Type must be
// application/json. Unknown fields are rejected unless
// WithAllowUnknownFields is given. Any value that fails to
// decode into the target type, such as a number for a string field or a
// malformed UUID, is a binding error wrapping ErrFailedToParseJSON.
// Fields missing from the body keep their zero value.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := &jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = contentType[:idx]
		}
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))

		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, cfg.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknown {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}
