package engine

import (
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

// CompileValidation converts constraint v, attached to the carried type t,
// into a JSON Schema node. Combinators recurse with the same carried type;
// numeric bounds take their type tag from NumericType(t).
func CompileValidation(t ir.Type, v ir.Validation, omitRequired bool) js.Node {
	return validationCompiler{carried: t, omitRequired: omitRequired}.compile(v)
}

type validationCompiler struct {
	carried      ir.Type
	omitRequired bool
}

var _ ir.ValidationVisitor[js.Node] = validationCompiler{}

func (c validationCompiler) compile(v ir.Validation) js.Node {
	return ir.VisitValidation[js.Node](v, c)
}

func (c validationCompiler) compileAll(vs []ir.Validation) []js.Node {
	out := make([]js.Node, 0, len(vs))
	for _, v := range vs {
		out = append(out, c.compile(v))
	}
	return out
}

func (c validationCompiler) numericType() js.NumericType { return NumericType(c.carried) }

func (c validationCompiler) VisitValidationAllOf(v *ir.ValidationAllOf) js.Node {
	return &js.AllOf{AllOf: c.compileAll(v.Validations)}
}

func (c validationCompiler) VisitValidationAnyOf(v *ir.ValidationAnyOf) js.Node {
	return &js.AnyOf{AnyOf: c.compileAll(v.Validations)}
}

func (c validationCompiler) VisitValidationOneOf(v *ir.ValidationOneOf) js.Node {
	return &js.OneOf{OneOf: c.compileAll(v.Validations)}
}

func (validationCompiler) VisitRegex(v *ir.Regex) js.Node {
	return &js.Regex{Pattern: v.Pattern}
}

// VisitSize applies a length bound to the compiled carried type. Only
// arrays and strings take the bound; for any other node, and for limits
// other than Minimum/Maximum/EqualTo/AnyOf/AllOf, the constraint is dropped
// and the plain compiled type is returned.
//
// A combinator limit is rewritten into one Size per member, all against the
// same carried type, and compiled through the regular combinator path so
// that each bound becomes its own branch.
func (c validationCompiler) VisitSize(v *ir.Size) js.Node {
	t := CompileType(c.carried, c.omitRequired)
	var minSize, maxSize **int
	switch n := t.(type) {
	case *js.TypedArray:
		minSize, maxSize = &n.MinSize, &n.MaxSize
	case *js.String:
		minSize, maxSize = &n.MinSize, &n.MaxSize
	default:
		return t
	}
	switch limit := v.Limit.(type) {
	case *ir.Minimum:
		*minSize = sizeOf(limit.Value)
	case *ir.Maximum:
		*maxSize = sizeOf(limit.Value)
	case *ir.EqualTo:
		*minSize = sizeOf(limit.Value)
		*maxSize = sizeOf(limit.Value)
	case *ir.ValidationAnyOf:
		return c.VisitValidationAnyOf(&ir.ValidationAnyOf{Validations: sizeEach(limit.Validations)})
	case *ir.ValidationAllOf:
		return c.VisitValidationAllOf(&ir.ValidationAllOf{Validations: sizeEach(limit.Validations)})
	}
	return t
}

func sizeOf(n js.Numeric) *int {
	s := n.Size()
	return &s
}

func sizeEach(limits []ir.Validation) []ir.Validation {
	out := make([]ir.Validation, 0, len(limits))
	for _, l := range limits {
		out = append(out, &ir.Size{Limit: l})
	}
	return out
}

func (c validationCompiler) VisitExclusiveMaximum(v *ir.ExclusiveMaximum) js.Node {
	return &js.ExclusiveMaximum{ExclusiveMaximum: v.Value, Type: c.numericType()}
}

func (c validationCompiler) VisitExclusiveMinimum(v *ir.ExclusiveMinimum) js.Node {
	return &js.ExclusiveMinimum{ExclusiveMinimum: v.Value, Type: c.numericType()}
}

func (c validationCompiler) VisitMaximum(v *ir.Maximum) js.Node {
	return &js.Maximum{Maximum: v.Value, Type: c.numericType()}
}

func (c validationCompiler) VisitMinimum(v *ir.Minimum) js.Node {
	return &js.Minimum{Minimum: v.Value, Type: c.numericType()}
}

// VisitEqualTo expresses equality as a closed interval of width zero.
func (c validationCompiler) VisitEqualTo(v *ir.EqualTo) js.Node {
	return &js.AllOf{AllOf: []js.Node{
		&js.Maximum{Maximum: v.Value, Type: c.numericType()},
		&js.Minimum{Minimum: v.Value, Type: c.numericType()},
	}}
}

// VisitNotEqualTo expresses inequality as strictly below or strictly above.
func (c validationCompiler) VisitNotEqualTo(v *ir.NotEqualTo) js.Node {
	return &js.AnyOf{AnyOf: []js.Node{
		&js.ExclusiveMaximum{ExclusiveMaximum: v.Value, Type: c.numericType()},
		&js.ExclusiveMinimum{ExclusiveMinimum: v.Value, Type: c.numericType()},
	}}
}
