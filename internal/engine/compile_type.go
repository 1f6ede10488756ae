package engine

import (
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

// CompileType converts t into a JSON Schema node. References are emitted as
// $ref nodes and never inlined, so compilation terminates on recursive
// definitions. With omitRequired set, no object lists required fields.
func CompileType(t ir.Type, omitRequired bool) js.Node {
	return typeCompiler{omitRequired: omitRequired}.compile(t)
}

type typeCompiler struct {
	omitRequired bool
}

var _ ir.TypeVisitor[js.Node] = typeCompiler{}

func (c typeCompiler) compile(t ir.Type) js.Node { return ir.VisitType[js.Node](t, c) }

func (c typeCompiler) compileAll(ts []ir.Type) []js.Node {
	out := make([]js.Node, 0, len(ts))
	for _, t := range ts {
		out = append(out, c.compile(t))
	}
	return out
}

func (typeCompiler) VisitBoolean(*ir.Boolean) js.Node           { return &js.Boolean{} }
func (typeCompiler) VisitInt32(*ir.Int32) js.Node               { return &js.Integer{} }
func (typeCompiler) VisitInt64(*ir.Int64) js.Node               { return &js.Integer{} }
func (typeCompiler) VisitUInt32(*ir.UInt32) js.Node             { return &js.Integer{} }
func (typeCompiler) VisitUInt64(*ir.UInt64) js.Node             { return &js.Integer{} }
func (typeCompiler) VisitInteger(*ir.Integer) js.Node           { return &js.Integer{} }
func (typeCompiler) VisitFloat(*ir.Float) js.Node               { return &js.Number{} }
func (typeCompiler) VisitDouble(*ir.Double) js.Node             { return &js.Number{} }
func (typeCompiler) VisitString(*ir.String) js.Node             { return &js.String{} }
func (typeCompiler) VisitBytestring(*ir.Bytestring) js.Node     { return &js.String{} }
func (typeCompiler) VisitVectorstring(*ir.Vectorstring) js.Node { return &js.String{} }

func (c typeCompiler) VisitAnyOf(t *ir.AnyOf) js.Node {
	return &js.AnyOf{AnyOf: c.compileAll(t.Types)}
}

func (c typeCompiler) VisitDescription(t *ir.Description) js.Node {
	return js.Describe(c.compile(t.Type), t.Text)
}

func (c typeCompiler) VisitFixedSizeTypedArray(t *ir.FixedSizeTypedArray) js.Node {
	return &js.FixedSizeTypedArray{Items: c.compile(t.Type), MinItems: t.Size, MaxItems: t.Size}
}

func (typeCompiler) VisitLiteral(t *ir.Literal) js.Node {
	return &js.StringEnum{Values: append([]string(nil), t.Values...)}
}

// VisitObject lists a field as required unless its type is directly
// Optional. A Description or Validated wrapping an Optional still counts as
// required.
func (c typeCompiler) VisitObject(t *ir.Object) js.Node {
	obj := &js.Object{Properties: make([]js.Property, 0, len(t.Fields))}
	for _, f := range t.Fields {
		obj.Properties = append(obj.Properties, js.Property{Name: f.Name, Schema: c.compile(f.Type)})
		if _, optional := f.Type.(*ir.Optional); !optional && !c.omitRequired {
			obj.Required = append(obj.Required, f.Name)
		}
	}
	if t.Additional != nil {
		obj.AdditionalProperties = c.compile(t.Additional)
	}
	return obj
}

func (c typeCompiler) VisitOptional(t *ir.Optional) js.Node {
	return &js.AnyOf{AnyOf: []js.Node{c.compile(t.Type), &js.Null{}}}
}

func (typeCompiler) VisitReference(t *ir.Reference) js.Node {
	return &js.Reference{Ref: js.RefTo(t.Name)}
}

func (c typeCompiler) VisitStringMap(t *ir.StringMap) js.Node {
	return &js.StringMap{AdditionalProperties: c.compile(t.Value)}
}

func (c typeCompiler) VisitTuple(t *ir.Tuple) js.Node {
	return &js.Tuple{PrefixItems: c.compileAll(t.Types)}
}

func (c typeCompiler) VisitTypedArray(t *ir.TypedArray) js.Node {
	return &js.TypedArray{Items: c.compile(t.Type)}
}

// VisitValidated produces no shape of its own: the constraint compiler
// decides the output, using t.Type as the carried type.
func (c typeCompiler) VisitValidated(t *ir.Validated) js.Node {
	return CompileValidation(t.Type, t.Validation, c.omitRequired)
}
