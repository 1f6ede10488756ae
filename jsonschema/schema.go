// Package jsonschema is the output model of schema compilation: the subset of
// the JSON Schema vocabulary the compiler emits, and an ordered JSON tree
// that writers render.
package jsonschema

// Node is a compiled JSON Schema node. The set of implementations is closed.
type Node interface {
	tree() Members
	describe(text string) Node
}

// Describe returns a copy of n carrying the given description. n itself is
// left untouched.
func Describe(n Node, text string) Node { return n.describe(text) }

// NumericType is the JSON Schema type tag attached to numeric bounds.
type NumericType string

const (
	TypeInteger NumericType = "integer"
	TypeNumber  NumericType = "number"
)

type Boolean struct {
	Description string
}

type Integer struct {
	Description string
}

type Number struct {
	Description string
}

// String renders MinSize/MaxSize as minLength/maxLength.
type String struct {
	Description string
	MinSize     *int
	MaxSize     *int
}

type Null struct {
	Description string
}

type AnyOf struct {
	Description string
	AnyOf       []Node
}

type AllOf struct {
	Description string
	AllOf       []Node
}

type OneOf struct {
	Description string
	OneOf       []Node
}

type Regex struct {
	Description string
	Pattern     string
}

type StringEnum struct {
	Description string
	Values      []string
}

type FixedSizeTypedArray struct {
	Description string
	Items       Node
	MinItems    int
	MaxItems    int
}

// TypedArray renders MinSize/MaxSize as minItems/maxItems.
type TypedArray struct {
	Description string
	Items       Node
	MinSize     *int
	MaxSize     *int
}

// Property is one entry of Object.Properties.
type Property struct {
	Name   string
	Schema Node
}

type Object struct {
	Description          string
	Properties           []Property
	Required             []string
	AdditionalProperties Node // nil when absent
}

// Reference points into the document definitions, e.g. "#/definitions/Node".
type Reference struct {
	Description string
	Ref         string
}

type StringMap struct {
	Description          string
	AdditionalProperties Node
}

type Tuple struct {
	Description string
	PrefixItems []Node
}

type Maximum struct {
	Description string
	Maximum     Numeric
	Type        NumericType
}

type Minimum struct {
	Description string
	Minimum     Numeric
	Type        NumericType
}

type ExclusiveMaximum struct {
	Description      string
	ExclusiveMaximum Numeric
	Type             NumericType
}

type ExclusiveMinimum struct {
	Description      string
	ExclusiveMinimum Numeric
	Type             NumericType
}

// DefinitionsPrefix is prepended to definition names to form a $ref.
const DefinitionsPrefix = "#/definitions/"

// RefTo returns the $ref value pointing at the named definition.
func RefTo(name string) string { return DefinitionsPrefix + name }
