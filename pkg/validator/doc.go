// Package validator provides declarative, rule-based validation.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Rules are evaluated with Collect, which runs every rule
// and aggregates all failures, so a caller sees each failing field at once and
// a field with several failing rules keeps all its messages in rule order.
//
// RuleSet binds an ordered list of rules to one value shape. It is the unit
// registered with the validation filter (see pkg/filter):
//
//	var createPostRules = validator.RuleSet[CreatePostRequest]{
//		func(r CreatePostRequest) validator.Rule {
//			return validator.Required("content", r.Content).WithMessage("Content should not be empty.")
//		},
//		func(r CreatePostRequest) validator.Rule {
//			return validator.NonNilUUID("userIdentification", r.UserIdentification)
//		},
//	}
//
//	errs := createPostRules.Validate(req)
//	if !errs.IsEmpty() {
//		fmt.Println(errs.Map()) // field -> messages
//	}
//
// There is no hidden global state; every helper only builds a value, so the
// package is safe for concurrent use.
package validator
