package handler

import (
	"github.com/dmitrymomot/postapi/pkg/filter"
)

// Handler parameter positions as seen by the validation filter.
const (
	contextArg = iota
	requestArg
)

// Validate returns a decorator that validates the bound request with the
// validator registered for R in lookup.
//
// The handler's parameters are declared as (ctx C, req R) with only req
// opted in to validation. Resolution happens when the decorator is applied,
// which Wrap does once per route. If lookup has no validator for R the
// decorator returns the handler unchanged.
//
// An invalid request is answered with 422 and the field to messages object;
// the handler is not called. A nil pointer, map or slice request counts as
// absent and is passed through unvalidated.
func Validate[C Context, R any](lookup filter.Lookup) Decorator[C, R] {
	return ValidateParams[C, R](lookup, filter.Arg[C](), filter.Validated[R]())
}

// ValidateParams is Validate with an explicit parameter declaration.
// params[0] describes the context and params[1] the request.
func ValidateParams[C Context, R any](lookup filter.Lookup, params ...filter.Param) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		f := filter.New(params, lookup)
		if f.PassThrough() {
			return next
		}

		endpoint := filter.Wrap(f,
			func(inv filter.Invocation) Response {
				args := inv.(invocation[C, R])
				return next(args.ctx, args.req)
			},
			func(_ filter.Invocation, rej *filter.Rejection) Response {
				return JSONError(ValidationError(rej.Fields()), WithJSONStatus(rej.Status))
			},
		)

		return func(ctx C, req R) Response {
			return endpoint(invocation[C, R]{ctx: ctx, req: req})
		}
	}
}

// invocation exposes a handler call to the filter without boxing the
// arguments into a slice.
type invocation[C Context, R any] struct {
	ctx C
	req R
}

func (i invocation[C, R]) Argument(n int) (any, bool) {
	switch n {
	case contextArg:
		return filter.Present(i.ctx)
	case requestArg:
		return filter.Present(i.req)
	}
	return nil, false
}
