package engine

import (
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

// NumericType returns the type tag attached to numeric bounds compiled
// against t: "integer" for the integer family, "number" for anything else.
//
// The fallback also covers pairings that make no sense (a maximum on a
// string, or on a Description wrapping an integer); those are tagged
// "number" rather than rejected.
func NumericType(t ir.Type) js.NumericType {
	switch t.(type) {
	case *ir.Int32, *ir.Int64, *ir.UInt32, *ir.UInt64, *ir.Integer:
		return js.TypeInteger
	default:
		return js.TypeNumber
	}
}
