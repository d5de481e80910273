package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// ErrorBody is the JSON envelope for non-validation errors.
type ErrorBody struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body with status 200.
// Errors passed to JSON are rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}

	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err.
//
// A ValidationError becomes 422 with the field to messages object as the
// whole body. An HTTPError keeps its status and key. Anything else is a
// generic 500 that does not leak err's message.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}

	var valErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &valErr):
		fields := make(map[string][]string, len(valErr))
		maps.Copy(fields, valErr)
		r.status = http.StatusUnprocessableEntity
		r.body = fields
	case errors.As(err, &httpErr):
		r.status = httpErr.Code
		r.body = ErrorBody{Error: &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}}
	default:
		r.status = http.StatusInternalServerError
		r.body = ErrorBody{Error: &ErrorDetail{Code: "internal_error", Message: GenericErrorMessage}}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenericErrorMessage is the client-facing message for unexpected failures.
const GenericErrorMessage = "An error occurred processing your request"
