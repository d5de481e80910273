// Package filter runs registered validators against the arguments of an
// endpoint before the endpoint executes.
//
// A route declares its parameters explicitly. Parameters that opt in to
// validation are declared with Validated; the rest with Arg:
//
//	params := []filter.Param{
//		filter.Arg[handler.Context](),
//		filter.Validated[CreatePostRequest](),
//	}
//
// Validators are registered per type at startup:
//
//	reg := filter.NewRegistry()
//	filter.Register[CreatePostRequest](reg, createPostRules)
//
// New resolves the parameters against the registry once, when the route is
// registered, producing one Descriptor per validated parameter that has a
// validator. Marked parameters without a validator are skipped silently.
//
//	f := filter.New(params, reg)
//	endpoint = filter.Wrap(f, endpoint, reject)
//
// When nothing resolves, Wrap returns the endpoint untouched. Otherwise every
// invocation validates the present arguments in parameter order and stops at
// the first invalid one, calling reject with a Rejection that carries the
// field to messages mapping and a 422 status. Arguments that are absent from
// the invocation are not validated; decoding failures belong to the binder
// and never reach the filter.
//
// The registry and the resolved descriptors are written during startup and
// only read afterwards, so a Filter is safe for concurrent use.
package filter
