// Package ir defines the internal type model that schema compilation starts
// from. Values are produced by a reflection or description layer and are
// never mutated by the compiler.
//
// Every cyclic relationship between named types must go through Reference;
// the compiler never unfolds a reference, which is what keeps compilation
// finite on recursive definitions.
package ir

import js "github.com/reoring/schemac/jsonschema"

// Type is the root interface of the internal type model. The set of
// implementations is closed: see VisitType.
type Type interface {
	accept(d typeDispatcher)
}

// Schema is a definitions table plus the root type.
type Schema struct {
	Root        Type
	Definitions []Definition // insertion order is preserved on output
}

// Definition names a type so that Reference nodes can point to it.
type Definition struct {
	Name string
	Type Type
}

// Field is a named object member.
type Field struct {
	Name string
	Type Type
}

type Boolean struct{}

type Int32 struct{}

type Int64 struct{}

type UInt32 struct{}

type UInt64 struct{}

// Integer is an integer of unspecified width.
type Integer struct{}

type Float struct{}

type Double struct{}

type String struct{}

// Bytestring surfaces as a plain JSON string.
type Bytestring struct{}

// Vectorstring surfaces as a plain JSON string.
type Vectorstring struct{}

// AnyOf accepts a value matching at least one of Types.
type AnyOf struct {
	Types []Type
}

// Description decorates Type with human readable text. It is not a shape
// of its own.
type Description struct {
	Type Type
	Text string
}

// FixedSizeTypedArray is an array of exactly Size elements of Type.
type FixedSizeTypedArray struct {
	Type Type
	Size int
}

// Literal is a closed enumeration of strings.
type Literal struct {
	Values []string
}

// Object is a record with ordered fields. Additional, when non-nil, types
// the members not listed in Fields.
type Object struct {
	Fields     []Field
	Additional Type
}

// Optional marks a nullable value; an Optional field is not required.
type Optional struct {
	Type Type
}

// Reference names an entry of the definitions table.
type Reference struct {
	Name string
}

// StringMap is an open map keyed by string.
type StringMap struct {
	Value Type
}

type Tuple struct {
	Types []Type
}

type TypedArray struct {
	Type Type
}

// Validated attaches a validation constraint to Type.
type Validated struct {
	Type       Type
	Validation Validation
}

// Shorthand constructors for producers.

func Ref(name string) *Reference                { return &Reference{Name: name} }
func Opt(t Type) *Optional                      { return &Optional{Type: t} }
func ArrayOf(t Type) *TypedArray                { return &TypedArray{Type: t} }
func MapOf(t Type) *StringMap                   { return &StringMap{Value: t} }
func Describe(t Type, text string) *Description { return &Description{Type: t, Text: text} }

// Validate wraps t with the given constraint.
func Validate(t Type, v Validation) *Validated { return &Validated{Type: t, Validation: v} }

// Int returns an integer bound value.
func Int(v int64) js.Numeric { return js.IntValue(v) }

// Num returns a floating point bound value.
func Num(v float64) js.Numeric { return js.FloatValue(v) }
