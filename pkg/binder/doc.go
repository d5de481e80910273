// Package binder decodes HTTP requests into typed values.
//
// JSON returns a function matching handler.Bind:
//
//	handler.Wrap(createPost,
//		handler.WithBinder[handler.Context, CreatePostRequest](binder.JSON()),
//	)
//
// Binding is the step before validation. A value that cannot be decoded into
// the target type is reported as an error wrapping one of the package
// sentinels and is never handed to validators.
package binder
