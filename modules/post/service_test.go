package post_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postapi/modules/post"
	"github.com/dmitrymomot/postapi/pkg/filter"
	"github.com/dmitrymomot/postapi/pkg/validator"
)

const internalErrorBody = `{"error":{"code":"internal_error","message":"An error occurred processing your request"}}`

var (
	fixedID  = uuid.MustParse("0b8e6a4e-6f0e-4a55-9d7c-0a3c6f1d2e11")
	fixedNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.FixedZone("CET", 3600))
)

func newRouter(opts ...post.Option) chi.Router {
	opts = append([]post.Option{
		post.WithLogger(slog.New(slog.DiscardHandler)),
		post.WithIDGenerator(func() uuid.UUID { return fixedID }),
		post.WithClock(func() time.Time { return fixedNow }),
	}, opts...)

	r := chi.NewRouter()
	post.NewService(opts...).Routes(r)
	return r
}

func createPost(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	t.Run("valid post is echoed back", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{
			"categoryIdentification": "8fbd7f90-dddc-479d-8211-0abd4815c0c7",
			"userIdentification": "16dc0c03-94db-4445-b94b-273006257006",
			"topic": "My amazing topic",
			"content": "Seriously good content"
		}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"postIdentification": "0b8e6a4e-6f0e-4a55-9d7c-0a3c6f1d2e11",
			"categoryIdentification": "8fbd7f90-dddc-479d-8211-0abd4815c0c7",
			"userIdentification": "16dc0c03-94db-4445-b94b-273006257006",
			"topic": "My amazing topic",
			"content": "Seriously good content",
			"createdAtUtc": "2024-03-09T13:30:00Z"
		}`, rec.Body.String())
	})

	t.Run("generated ids are fresh", func(t *testing.T) {
		t.Parallel()

		r := chi.NewRouter()
		post.NewService(post.WithLogger(slog.New(slog.DiscardHandler))).Routes(r)
		body := `{"categoryIdentification":"8fbd7f90-dddc-479d-8211-0abd4815c0c7","userIdentification":"16dc0c03-94db-4445-b94b-273006257006","topic":"t","content":"c"}`

		before := time.Now()
		var first, second post.CreatePostResponse
		require.NoError(t, json.Unmarshal(createPost(t, r, body).Body.Bytes(), &first))
		require.NoError(t, json.Unmarshal(createPost(t, r, body).Body.Bytes(), &second))

		assert.NotEqual(t, uuid.Nil, first.PostIdentification)
		assert.NotEqual(t, first.PostIdentification, second.PostIdentification)
		assert.Equal(t, time.UTC, first.CreatedAtUTC.Location())
		assert.False(t, first.CreatedAtUTC.Before(before.UTC()), "timestamp is taken at request time")
		assert.False(t, second.CreatedAtUTC.Before(first.CreatedAtUTC))
	})

	t.Run("empty post reports all fields", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{"topic":"","content":""}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"content": ["Content should not be empty."],
			"topic": ["Topic should not be empty."],
			"categoryIdentification": ["CategoryIdentification should not be empty."],
			"userIdentification": ["UserIdentification should not be empty."]
		}`, rec.Body.String())
	})

	t.Run("blank strings and nil uuids are empty", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{
			"categoryIdentification": "00000000-0000-0000-0000-000000000000",
			"userIdentification": "16dc0c03-94db-4445-b94b-273006257006",
			"topic": "   ",
			"content": "fine"
		}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"topic": ["Topic should not be empty."],
			"categoryIdentification": ["CategoryIdentification should not be empty."]
		}`, rec.Body.String())
	})

	t.Run("pascal case keys bind", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{
			"CategoryIdentification": "8fbd7f90-dddc-479d-8211-0abd4815c0c7",
			"UserIdentification": "16dc0c03-94db-4445-b94b-273006257006",
			"Topic": "Topic",
			"Content": "Content"
		}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undeclared properties are ignored", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{
			"categoryIdentification": "8fbd7f90-dddc-479d-8211-0abd4815c0c7",
			"userIdentification": "16dc0c03-94db-4445-b94b-273006257006",
			"topic": "My amazing topic",
			"content": "Seriously good content",
			"tags": ["x"]
		}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"topic":"My amazing topic"`)
		assert.NotContains(t, rec.Body.String(), "tags")
	})

	t.Run("undeclared properties do not hide empty fields", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(), `{"topic":"t","title":"x"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"content": ["Content should not be empty."],
			"categoryIdentification": ["CategoryIdentification should not be empty."],
			"userIdentification": ["UserIdentification should not be empty."]
		}`, rec.Body.String())
	})

	bindFailures := []struct {
		name string
		body string
	}{
		{
			name: "malformed uuid",
			body: `{"categoryIdentification":"8fbd7f90-dddc-479d-8211-0abd4815c0cZ","userIdentification":"16dc0c03-94db-4445-b94b-273006257006","topic":"t","content":"c"}`,
		},
		{
			name: "empty uuid string",
			body: `{"categoryIdentification":"","userIdentification":"16dc0c03-94db-4445-b94b-273006257006","topic":"t","content":"c"}`,
		},
		{
			name: "number for string",
			body: `{"categoryIdentification":"8fbd7f90-dddc-479d-8211-0abd4815c0c7","userIdentification":"16dc0c03-94db-4445-b94b-273006257006","topic":42,"content":"c"}`,
		},
		{
			name: "malformed json",
			body: `{"topic":`,
		},
		{
			name: "null category identifier",
			body: `{"categoryIdentification":null,"userIdentification":"16dc0c03-94db-4445-b94b-273006257006","topic":"t","content":"c"}`,
		},
		{
			name: "null user identifier",
			body: `{"categoryIdentification":"8fbd7f90-dddc-479d-8211-0abd4815c0c7","userIdentification":null,"topic":"t","content":"c"}`,
		},
	}

	for _, tt := range bindFailures {
		t.Run(tt.name+" is a server error", func(t *testing.T) {
			t.Parallel()

			rec := createPost(t, newRouter(), tt.body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, internalErrorBody, rec.Body.String())
		})
	}

	t.Run("wrong content type is a server error", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("binding failures are logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		rec := createPost(t, newRouter(post.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil)))), `{"topic":42}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "failed to parse JSON request body")
	})

	t.Run("without registered validator requests pass through", func(t *testing.T) {
		t.Parallel()

		rec := createPost(t, newRouter(post.WithLookup(filter.NewRegistry())), `{}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreatePostRules(t *testing.T) {
	t.Parallel()

	valid := post.CreatePostRequest{
		CategoryIdentification: uuid.New(),
		UserIdentification:     uuid.New(),
		Topic:                  "topic",
		Content:                "content",
	}
	assert.True(t, post.CreatePostRules.Validate(valid).IsEmpty())

	errs := post.CreatePostRules.Validate(post.CreatePostRequest{})
	assert.Equal(t, validator.ValidationErrors{
		{Field: "content", Message: "Content should not be empty."},
		{Field: "topic", Message: "Topic should not be empty."},
		{Field: "categoryIdentification", Message: "CategoryIdentification should not be empty."},
		{Field: "userIdentification", Message: "UserIdentification should not be empty."},
	}, errs)
	assert.Equal(t, errs, post.CreatePostRules.Validate(post.CreatePostRequest{}))
}

func TestCreatePostRequest_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("absent identifiers stay nil", func(t *testing.T) {
		t.Parallel()

		var req post.CreatePostRequest
		require.NoError(t, json.Unmarshal([]byte(`{"Topic":"t","content":"c"}`), &req))
		assert.Equal(t, uuid.Nil, req.CategoryIdentification)
		assert.Equal(t, "t", req.Topic)
		assert.Equal(t, "c", req.Content)
	})

	for _, body := range []string{
		`{"categoryIdentification":null}`,
		`{"CategoryIdentification": null}`,
		`{"userIdentification":null,"categoryIdentification":"8fbd7f90-dddc-479d-8211-0abd4815c0c7"}`,
	} {
		var req post.CreatePostRequest
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorIs(t, err, post.ErrNullIdentifier, body)
	}
}

func TestRegisterValidators(t *testing.T) {
	t.Parallel()

	reg := filter.NewRegistry()
	post.RegisterValidators(reg)

	v, err := reg.MustLookup(filter.Validated[post.CreatePostRequest]().Type)
	require.NoError(t, err)
	assert.Len(t, v.Validate(post.CreatePostRequest{}), 4)
}
