package post

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/postapi/handler"
	"github.com/dmitrymomot/postapi/pkg/binder"
	"github.com/dmitrymomot/postapi/pkg/filter"
	"github.com/dmitrymomot/postapi/pkg/logger"
)

// RegisterValidators adds the post module's request validators to reg.
func RegisterValidators(reg *filter.Registry) {
	filter.Register[CreatePostRequest](reg, CreatePostRules)
}

// Service serves the post endpoints. It stores nothing; a created post is
// only echoed back.
type Service struct {
	lookup       filter.Lookup
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	newID        func() uuid.UUID
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLookup sets the validator lookup used by the routes. Without it the
// service uses a registry holding only its own validators.
func WithLookup(l filter.Lookup) Option {
	return func(s *Service) {
		if l != nil {
			s.lookup = l
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces uuid.New for post ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now for creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		log:   slog.Default(),
		newID: uuid.New,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.lookup == nil {
		reg := filter.NewRegistry()
		RegisterValidators(reg)
		s.lookup = reg
	}
	s.errorHandler = handler.NewErrorHandler(s.log)

	return s
}

// Routes registers POST /posts on r.
//
// Malformed JSON, a value of the wrong type, a malformed identifier or a
// null identifier fails binding and is answered with a generic 500.
// Properties the request does not declare are ignored. A well-formed
// request with empty fields is answered with 422 and the field to messages
// object.
func (s *Service) Routes(r chi.Router) {
	r.Post("/posts", handler.Wrap(s.createPost,
		handler.WithBinder[handler.Context, CreatePostRequest](binder.JSON(binder.WithAllowUnknownFields())),
		handler.WithErrorHandler[handler.Context, CreatePostRequest](s.errorHandler),
		handler.WithDecorators(handler.Validate[handler.Context, CreatePostRequest](s.lookup)),
	))
}

func (s *Service) createPost(ctx handler.Context, req CreatePostRequest) handler.Response {
	resp := CreatePostResponse{
		PostIdentification:     s.newID(),
		CategoryIdentification: req.CategoryIdentification,
		UserIdentification:     req.UserIdentification,
		Topic:                  req.Topic,
		Content:                req.Content,
		CreatedAtUTC:           s.now().UTC(),
	}

	s.log.DebugContext(ctx, "post created",
		slog.String("post_id", resp.PostIdentification.String()),
		logger.Component("post"),
	)

	return handler.JSON(resp)
}
