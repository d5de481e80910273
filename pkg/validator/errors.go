package validator

import "errors"

// ErrValidationFailed is matched by any non-empty ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
