package handler

import "net/http"

// HTTPError is an error that carries its own status code.
// Key is a stable machine-readable code used in JSON error bodies.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
)
