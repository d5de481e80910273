package post

import (
	"time"

	"github.com/google/uuid"
)

// CreatePostResponse echoes the request with the new post's id and creation
// time in UTC.
type CreatePostResponse struct {
	PostIdentification     uuid.UUID `json:"postIdentification"`
	CategoryIdentification uuid.UUID `json:"categoryIdentification"`
	UserIdentification     uuid.UUID `json:"userIdentification"`
	Topic                  string    `json:"topic"`
	Content                string    `json:"content"`
	CreatedAtUTC           time.Time `json:"createdAtUtc"`
}
