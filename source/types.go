package source

import (
	"gopkg.in/yaml.v3"

	schemac "github.com/reoring/schemac"
	ir "github.com/reoring/schemac/ir"
)

// Type tags accepted under the "type" key.
const (
	TagBoolean        = "boolean"
	TagInt32          = "int32"
	TagInt64          = "int64"
	TagUInt32         = "uint32"
	TagUInt64         = "uint64"
	TagInteger        = "integer"
	TagFloat          = "float"
	TagDouble         = "double"
	TagString         = "string"
	TagBytestring     = "bytestring"
	TagVectorstring   = "vectorstring"
	TagAnyOf          = "anyOf"
	TagDescription    = "description"
	TagFixedSizeArray = "fixedSizeArray"
	TagLiteral        = "literal"
	TagObject         = "object"
	TagOptional       = "optional"
	TagReference      = "reference"
	TagStringMap      = "stringMap"
	TagTuple          = "tuple"
	TagArray          = "array"
	TagValidated      = "validated"
)

var primitives = map[string]func() ir.Type{
	TagBoolean:      func() ir.Type { return &ir.Boolean{} },
	TagInt32:        func() ir.Type { return &ir.Int32{} },
	TagInt64:        func() ir.Type { return &ir.Int64{} },
	TagUInt32:       func() ir.Type { return &ir.UInt32{} },
	TagUInt64:       func() ir.Type { return &ir.UInt64{} },
	TagInteger:      func() ir.Type { return &ir.Integer{} },
	TagFloat:        func() ir.Type { return &ir.Float{} },
	TagDouble:       func() ir.Type { return &ir.Double{} },
	TagString:       func() ir.Type { return &ir.String{} },
	TagBytestring:   func() ir.Type { return &ir.Bytestring{} },
	TagVectorstring: func() ir.Type { return &ir.Vectorstring{} },
}

// typ decodes one type node. It returns nil after reporting an issue.
func (d *decoder) typ(n *yaml.Node, p schemac.PathRef, depth int) ir.Type {
	if d.done() || !d.depthOK(n, p, depth) {
		return nil
	}
	m := d.mapping(n, p)
	if m == nil {
		return nil
	}
	defer d.finish(m)
	tn := m.require("type")
	if tn == nil {
		return nil
	}
	tag, ok := d.str(tn, p.Field("type"))
	if !ok {
		return nil
	}
	if mk, ok := primitives[tag]; ok {
		return mk()
	}
	next := depth + 1
	switch tag {
	case TagAnyOf:
		ts, ok := d.typeList(m.require("of"), p.Field("of"), next)
		if !ok {
			return nil
		}
		return &ir.AnyOf{Types: ts}
	case TagDescription:
		text, tok := d.requiredStr(m, "text")
		inner := d.inner(m, p, next)
		if !tok || inner == nil {
			return nil
		}
		return &ir.Description{Type: inner, Text: text}
	case TagFixedSizeArray:
		inner := d.inner(m, p, next)
		size, sok := d.size(m.require("size"), p.Field("size"))
		if inner == nil || !sok {
			return nil
		}
		return &ir.FixedSizeTypedArray{Type: inner, Size: size}
	case TagLiteral:
		vp := p.Field("values")
		items, ok := d.seq(m.require("values"), vp)
		if !ok {
			return nil
		}
		values := make([]string, 0, len(items))
		for i, it := range items {
			v, ok := d.str(it, vp.Index(i))
			if !ok {
				return nil
			}
			values = append(values, v)
		}
		return &ir.Literal{Values: values}
	case TagObject:
		return d.object(m, p, next)
	case TagOptional:
		if inner := d.inner(m, p, next); inner != nil {
			return &ir.Optional{Type: inner}
		}
		return nil
	case TagReference:
		rn := m.require("name")
		if rn == nil {
			return nil
		}
		name, ok := d.str(rn, p.Field("name"))
		if !ok {
			return nil
		}
		d.refs = append(d.refs, pendingRef{name: name, path: p.Field("name"), node: rn})
		return &ir.Reference{Name: name}
	case TagStringMap:
		if inner := d.inner(m, p, next); inner != nil {
			return &ir.StringMap{Value: inner}
		}
		return nil
	case TagTuple:
		ts, ok := d.typeList(m.require("of"), p.Field("of"), next)
		if !ok {
			return nil
		}
		return &ir.Tuple{Types: ts}
	case TagArray:
		if inner := d.inner(m, p, next); inner != nil {
			return &ir.TypedArray{Type: inner}
		}
		return nil
	case TagValidated:
		inner := d.inner(m, p, next)
		var v ir.Validation
		if vn := m.require("validation"); vn != nil {
			v = d.validation(vn, p.Field("validation"), next)
		}
		if inner == nil || v == nil {
			return nil
		}
		return &ir.Validated{Type: inner, Validation: v}
	}
	d.report(p.Field("type"), schemac.CodeInvalidEnum, tn, "value", tag)
	return nil
}

// inner decodes the "of" key holding a single type.
func (d *decoder) inner(m *mapping, p schemac.PathRef, depth int) ir.Type {
	n := m.require("of")
	if n == nil {
		return nil
	}
	return d.typ(n, p.Field("of"), depth)
}

func (d *decoder) requiredStr(m *mapping, key string) (string, bool) {
	n := m.require(key)
	if n == nil {
		return "", false
	}
	return d.str(n, m.path.Field(key))
}

func (d *decoder) typeList(n *yaml.Node, p schemac.PathRef, depth int) ([]ir.Type, bool) {
	if n == nil {
		return nil, false
	}
	items, ok := d.seq(n, p)
	if !ok {
		return nil, false
	}
	out := make([]ir.Type, 0, len(items))
	for i, it := range items {
		t := d.typ(it, p.Index(i), depth)
		if t == nil {
			ok = false
			continue
		}
		out = append(out, t)
	}
	return out, ok
}

func (d *decoder) size(n *yaml.Node, p schemac.PathRef) (int, bool) {
	if n == nil {
		return 0, false
	}
	v, ok := d.number(n, p)
	if !ok {
		return 0, false
	}
	if !v.IsInt() {
		d.report(p, schemac.CodeInvalidType, n, "expected", "integer")
		return 0, false
	}
	if v.Int64() < 0 {
		d.report(p, schemac.CodeTooSmall, n, "min", 0)
		return 0, false
	}
	return int(v.Int64()), true
}

func (d *decoder) object(m *mapping, p schemac.PathRef, depth int) ir.Type {
	obj := &ir.Object{}
	ok := true
	fp := p.Field("fields")
	if fn := m.take("fields"); fn != nil {
		fm := d.mapping(fn, fp)
		if fm == nil {
			return nil
		}
		for _, e := range fm.entries {
			fm.used[e.key] = true
			t := d.typ(e.val, fp.Field(e.key), depth)
			if t == nil {
				ok = false
				continue
			}
			obj.Fields = append(obj.Fields, ir.Field{Name: e.key, Type: t})
		}
	}
	if an := m.take("additional"); an != nil {
		obj.Additional = d.typ(an, p.Field("additional"), depth)
		ok = ok && obj.Additional != nil
	}
	if !ok {
		return nil
	}
	return obj
}
