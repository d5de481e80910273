package validator

// RuleFunc builds the rule for one field of a T value.
// The function is the field accessor; the returned Rule carries the
// predicate and the failure message.
type RuleFunc[T any] func(v T) Rule

// RuleSet is an ordered list of rules bound to one value shape.
// Declare it once as a package-level value and treat it as read-only.
//
//	var signupRules = validator.RuleSet[SignupRequest]{
//		func(r SignupRequest) validator.Rule { return validator.Required("email", r.Email) },
//		func(r SignupRequest) validator.Rule { return validator.NonNilUUID("team", r.TeamID) },
//	}
type RuleSet[T any] []RuleFunc[T]

// Validate runs every rule against v and returns all failures in rule order.
// It has no side effects, so repeated calls with the same v return equal results.
func (rs RuleSet[T]) Validate(v T) ValidationErrors {
	rules := make([]Rule, 0, len(rs))
	for _, build := range rs {
		rules = append(rules, build(v))
	}
	return Collect(rules...)
}
