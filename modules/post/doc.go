// Package post implements the create post endpoint.
//
//	svc := post.NewService(post.WithLogger(log))
//	r := chi.NewRouter()
//	svc.Routes(r)
//
// Requests are validated with CreatePostRules before the handler runs.
package post
