package source

import (
	"gopkg.in/yaml.v3"

	schemac "github.com/reoring/schemac"
	ir "github.com/reoring/schemac/ir"
)

// Validation rules accepted under the "rule" key.
const (
	RuleAllOf            = "allOf"
	RuleAnyOf            = "anyOf"
	RuleOneOf            = "oneOf"
	RuleRegex            = "regex"
	RuleSize             = "size"
	RuleExclusiveMaximum = "exclusiveMaximum"
	RuleExclusiveMinimum = "exclusiveMinimum"
	RuleMaximum          = "maximum"
	RuleMinimum          = "minimum"
	RuleEqualTo          = "equalTo"
	RuleNotEqualTo       = "notEqualTo"
)

// validation decodes one validation node. It returns nil after reporting an
// issue.
func (d *decoder) validation(n *yaml.Node, p schemac.PathRef, depth int) ir.Validation {
	if d.done() || !d.depthOK(n, p, depth) {
		return nil
	}
	m := d.mapping(n, p)
	if m == nil {
		return nil
	}
	defer d.finish(m)
	rn := m.require("rule")
	if rn == nil {
		return nil
	}
	rule, ok := d.str(rn, p.Field("rule"))
	if !ok {
		return nil
	}
	next := depth + 1
	switch rule {
	case RuleAllOf:
		vs, ok := d.validationList(m.require("of"), p.Field("of"), next)
		if !ok {
			return nil
		}
		return &ir.ValidationAllOf{Validations: vs}
	case RuleAnyOf:
		vs, ok := d.validationList(m.require("of"), p.Field("of"), next)
		if !ok {
			return nil
		}
		return &ir.ValidationAnyOf{Validations: vs}
	case RuleOneOf:
		vs, ok := d.validationList(m.require("of"), p.Field("of"), next)
		if !ok {
			return nil
		}
		return &ir.ValidationOneOf{Validations: vs}
	case RuleRegex:
		pattern, ok := d.requiredStr(m, "pattern")
		if !ok {
			return nil
		}
		return &ir.Regex{Pattern: pattern}
	case RuleSize:
		ln := m.require("limit")
		if ln == nil {
			return nil
		}
		if limit := d.validation(ln, p.Field("limit"), next); limit != nil {
			return &ir.Size{Limit: limit}
		}
		return nil
	case RuleExclusiveMaximum, RuleExclusiveMinimum, RuleMaximum, RuleMinimum, RuleEqualTo, RuleNotEqualTo:
		vn := m.require("value")
		if vn == nil {
			return nil
		}
		v, ok := d.number(vn, p.Field("value"))
		if !ok {
			return nil
		}
		switch rule {
		case RuleExclusiveMaximum:
			return &ir.ExclusiveMaximum{Value: v}
		case RuleExclusiveMinimum:
			return &ir.ExclusiveMinimum{Value: v}
		case RuleMaximum:
			return &ir.Maximum{Value: v}
		case RuleMinimum:
			return &ir.Minimum{Value: v}
		case RuleEqualTo:
			return &ir.EqualTo{Value: v}
		default:
			return &ir.NotEqualTo{Value: v}
		}
	}
	d.report(p.Field("rule"), schemac.CodeInvalidEnum, rn, "value", rule)
	return nil
}

func (d *decoder) validationList(n *yaml.Node, p schemac.PathRef, depth int) ([]ir.Validation, bool) {
	if n == nil {
		return nil, false
	}
	items, ok := d.seq(n, p)
	if !ok {
		return nil, false
	}
	out := make([]ir.Validation, 0, len(items))
	for i, it := range items {
		v := d.validation(it, p.Index(i), depth)
		if v == nil {
			ok = false
			continue
		}
		out = append(out, v)
	}
	return out, ok
}
