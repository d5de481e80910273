package post

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/postapi/pkg/validator"
)

// CreatePostRequest is the body of POST /posts.
// Missing identifiers decode to uuid.Nil and are rejected by CreatePostRules.
type CreatePostRequest struct {
	CategoryIdentification uuid.UUID `json:"categoryIdentification"`
	UserIdentification     uuid.UUID `json:"userIdentification"`
	Topic                  string    `json:"topic"`
	Content                string    `json:"content"`
}

// UnmarshalJSON decodes r and fails with ErrNullIdentifier when an
// identifier is present but null. An absent identifier stays uuid.Nil.
func (r *CreatePostRequest) UnmarshalJSON(data []byte) error {
	var ids struct {
		CategoryIdentification json.RawMessage `json:"categoryIdentification"`
		UserIdentification     json.RawMessage `json:"userIdentification"`
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	if isNull(ids.CategoryIdentification) {
		return fmt.Errorf("%w: categoryIdentification", ErrNullIdentifier)
	}
	if isNull(ids.UserIdentification) {
		return fmt.Errorf("%w: userIdentification", ErrNullIdentifier)
	}

	type plain CreatePostRequest
	return json.Unmarshal(data, (*plain)(r))
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// CreatePostRules reports every empty field of a CreatePostRequest.
// Blank strings count as empty.
var CreatePostRules = validator.RuleSet[CreatePostRequest]{
	func(r CreatePostRequest) validator.Rule {
		return validator.Required("content", r.Content).WithMessage("Content should not be empty.")
	},
	func(r CreatePostRequest) validator.Rule {
		return validator.Required("topic", r.Topic).WithMessage("Topic should not be empty.")
	},
	func(r CreatePostRequest) validator.Rule {
		return validator.NonNilUUID("categoryIdentification", r.CategoryIdentification).
			WithMessage("CategoryIdentification should not be empty.")
	},
	func(r CreatePostRequest) validator.Rule {
		return validator.NonNilUUID("userIdentification", r.UserIdentification).
			WithMessage("UserIdentification should not be empty.")
	},
}
