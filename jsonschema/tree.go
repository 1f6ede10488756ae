package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Member is one key/value pair of an ordered JSON object.
//
// Value is one of: Members, []any, string, bool, int, int64, float64 or nil.
type Member struct {
	Key   string
	Value any
}

// Members is a JSON object that keeps its keys in insertion order.
type Members []Member

// MarshalJSON writes the members in order. Nested Members are handled by
// the same method through the encoder.
func (m Members) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value stored under key.
func (m Members) Get(key string) (any, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

func (m Members) add(key string, v any) Members { return append(m, Member{Key: key, Value: v}) }

func (m Members) addSize(key string, v *int) Members {
	if v == nil {
		return m
	}
	return m.add(key, *v)
}

func (m Members) addDescription(text string) Members {
	if text == "" {
		return m
	}
	return m.add("description", text)
}

// Tree renders a single node.
func Tree(n Node) Members { return n.tree() }

func trees(ns []Node) []any {
	out := make([]any, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.tree())
	}
	return out
}

func typed(t string) Members { return Members{{Key: "type", Value: t}} }

func (s *Boolean) tree() Members { return typed("boolean").addDescription(s.Description) }
func (s *Integer) tree() Members { return typed("integer").addDescription(s.Description) }
func (s *Number) tree() Members  { return typed("number").addDescription(s.Description) }
func (s *Null) tree() Members    { return typed("null").addDescription(s.Description) }

func (s *String) tree() Members {
	return typed("string").
		addSize("minLength", s.MinSize).
		addSize("maxLength", s.MaxSize).
		addDescription(s.Description)
}

func (s *AnyOf) tree() Members {
	return Members{{Key: "anyOf", Value: trees(s.AnyOf)}}.addDescription(s.Description)
}

func (s *AllOf) tree() Members {
	return Members{{Key: "allOf", Value: trees(s.AllOf)}}.addDescription(s.Description)
}

func (s *OneOf) tree() Members {
	return Members{{Key: "oneOf", Value: trees(s.OneOf)}}.addDescription(s.Description)
}

func (s *Regex) tree() Members {
	return typed("string").add("pattern", s.Pattern).addDescription(s.Description)
}

func (s *StringEnum) tree() Members {
	values := make([]any, 0, len(s.Values))
	for _, v := range s.Values {
		values = append(values, v)
	}
	return typed("string").add("enum", values).addDescription(s.Description)
}

func (s *FixedSizeTypedArray) tree() Members {
	return typed("array").
		add("items", s.Items.tree()).
		add("minItems", s.MinItems).
		add("maxItems", s.MaxItems).
		addDescription(s.Description)
}

func (s *TypedArray) tree() Members {
	return typed("array").
		add("items", s.Items.tree()).
		addSize("minItems", s.MinSize).
		addSize("maxItems", s.MaxSize).
		addDescription(s.Description)
}

func (s *Object) tree() Members {
	props := Members{}
	for _, p := range s.Properties {
		props = props.add(p.Name, p.Schema.tree())
	}
	m := typed("object").add("properties", props)
	if len(s.Required) > 0 {
		req := make([]any, 0, len(s.Required))
		for _, r := range s.Required {
			req = append(req, r)
		}
		m = m.add("required", req)
	}
	if s.AdditionalProperties != nil {
		m = m.add("additionalProperties", s.AdditionalProperties.tree())
	}
	return m.addDescription(s.Description)
}

func (s *Reference) tree() Members {
	return Members{{Key: "$ref", Value: s.Ref}}.addDescription(s.Description)
}

func (s *StringMap) tree() Members {
	return typed("object").
		add("additionalProperties", s.AdditionalProperties.tree()).
		addDescription(s.Description)
}

func (s *Tuple) tree() Members {
	return typed("array").add("prefixItems", trees(s.PrefixItems)).addDescription(s.Description)
}

func (s *Maximum) tree() Members {
	return typed(string(s.Type)).add("maximum", s.Maximum.value()).addDescription(s.Description)
}

func (s *Minimum) tree() Members {
	return typed(string(s.Type)).add("minimum", s.Minimum.value()).addDescription(s.Description)
}

func (s *ExclusiveMaximum) tree() Members {
	return typed(string(s.Type)).add("exclusiveMaximum", s.ExclusiveMaximum.value()).addDescription(s.Description)
}

func (s *ExclusiveMinimum) tree() Members {
	return typed(string(s.Type)).add("exclusiveMinimum", s.ExclusiveMinimum.value()).addDescription(s.Description)
}
