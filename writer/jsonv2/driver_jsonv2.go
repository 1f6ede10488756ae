// Package jsonv2 provides a schemac.JSONDriver backed by the
// go-json-experiment jsontext token encoder.
package jsonv2

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	schemac "github.com/reoring/schemac"
	js "github.com/reoring/schemac/jsonschema"
)

// Driver returns a schemac.JSONDriver that streams the tree token by token.
func Driver() schemac.JSONDriver { return driverV2{} }

type driverV2 struct{}

func (driverV2) Name() string { return "jsontext" }

func (driverV2) Encode(w io.Writer, tree js.Members, indent string) error {
	var opts []jsontext.Options
	if indent != "" {
		opts = append(opts, jsontext.WithIndent(indent))
	}
	enc := jsontext.NewEncoder(w, opts...)
	return writeValue(enc, tree)
}

func writeValue(enc *jsontext.Encoder, v any) error {
	switch t := v.(type) {
	case js.Members:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, kv := range t {
			if err := enc.WriteToken(jsontext.String(kv.Key)); err != nil {
				return err
			}
			if err := writeValue(enc, kv.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case []any:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, it := range t {
			if err := writeValue(enc, it); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case string:
		return enc.WriteToken(jsontext.String(t))
	case bool:
		return enc.WriteToken(jsontext.Bool(t))
	case int:
		return enc.WriteToken(jsontext.Int(int64(t)))
	case int64:
		return enc.WriteToken(jsontext.Int(t))
	case float64:
		return enc.WriteToken(jsontext.Float(t))
	case nil:
		return enc.WriteToken(jsontext.Null)
	default:
		return fmt.Errorf("jsonv2: unsupported tree value %T", v)
	}
}
