package ir

import js "github.com/reoring/schemac/jsonschema"

// Validation is a predicate attached to a type through Validated. The set of
// implementations is closed: see VisitValidation.
type Validation interface {
	acceptValidation(d validationDispatcher)
}

// ValidationAllOf requires every member to hold.
type ValidationAllOf struct {
	Validations []Validation
}

// ValidationAnyOf requires at least one member to hold.
type ValidationAnyOf struct {
	Validations []Validation
}

// ValidationOneOf requires exactly one member to hold.
type ValidationOneOf struct {
	Validations []Validation
}

type Regex struct {
	Pattern string
}

// Size bounds the length of a string or array. Limit is expected to be a
// Minimum, Maximum, EqualTo, ValidationAnyOf or ValidationAllOf of those.
type Size struct {
	Limit Validation
}

type ExclusiveMaximum struct {
	Value js.Numeric
}

type ExclusiveMinimum struct {
	Value js.Numeric
}

type Maximum struct {
	Value js.Numeric
}

type Minimum struct {
	Value js.Numeric
}

type EqualTo struct {
	Value js.Numeric
}

type NotEqualTo struct {
	Value js.Numeric
}
