// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and an already bound request value and
// returns a Response. Wrap adapts it to http.HandlerFunc, running the
// configured binders first and composing decorators once per route:
//
//	func createPost(ctx handler.Context, req CreatePostRequest) handler.Response {
//		return handler.JSON(newPost(req))
//	}
//
//	r.Post("/posts", handler.Wrap(createPost,
//		handler.WithBinder[handler.Context, CreatePostRequest](binder.JSON()),
//		handler.WithDecorators(handler.Validate[handler.Context, CreatePostRequest](registry)),
//	))
//
// # Validation
//
// Validate is the decorator that runs the validator registered for the
// request type (see pkg/filter and pkg/validator). A failing request is
// answered with 422 Unprocessable Entity and a JSON object mapping each
// failing field to its messages:
//
//	{"topic": ["Topic should not be empty."]}
//
// # Errors
//
// Binding happens before any decorator. A request that cannot be decoded
// never reaches validation; its error goes to the ErrorHandler, which by
// default renders a generic 500:
//
//	{"error": {"code": "internal_error", "message": "An error occurred processing your request"}}
//
// HTTPError values keep their status code. Recoverer gives panics the same
// treatment at the middleware level.
package handler
