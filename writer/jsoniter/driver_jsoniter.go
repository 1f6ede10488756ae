// Package jsoniter provides a schemac.JSONDriver backed by the
// json-iterator stream writer.
package jsoniter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	schemac "github.com/reoring/schemac"
	js "github.com/reoring/schemac/jsonschema"
)

// Driver returns a schemac.JSONDriver that streams the tree through a
// jsoniter.Stream. Indentation must consist of spaces only.
func Driver() schemac.JSONDriver { return driverIter{} }

type driverIter struct{}

func (driverIter) Name() string { return "jsoniter" }

var (
	apisMu sync.Mutex
	apis   = map[int]jsoniter.API{}
)

// api returns a frozen config per indentation width.
func api(step int) jsoniter.API {
	apisMu.Lock()
	defer apisMu.Unlock()
	a, ok := apis[step]
	if !ok {
		a = jsoniter.Config{EscapeHTML: true, IndentionStep: step}.Froze()
		apis[step] = a
	}
	return a
}

func (driverIter) Encode(w io.Writer, tree js.Members, indent string) error {
	if strings.Trim(indent, " ") != "" {
		return fmt.Errorf("jsoniter: indent must be spaces, got %q", indent)
	}
	stream := jsoniter.NewStream(api(len(indent)), w, 4096)
	writeValue(stream, tree)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

func writeValue(s *jsoniter.Stream, v any) {
	switch t := v.(type) {
	case js.Members:
		if len(t) == 0 {
			s.WriteEmptyObject()
			return
		}
		s.WriteObjectStart()
		for i, kv := range t {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(kv.Key)
			writeValue(s, kv.Value)
		}
		s.WriteObjectEnd()
	case []any:
		if len(t) == 0 {
			s.WriteEmptyArray()
			return
		}
		s.WriteArrayStart()
		for i, it := range t {
			if i > 0 {
				s.WriteMore()
			}
			writeValue(s, it)
		}
		s.WriteArrayEnd()
	case string:
		s.WriteString(t)
	case bool:
		s.WriteBool(t)
	case int:
		s.WriteInt(t)
	case int64:
		s.WriteInt64(t)
	case float64:
		s.WriteFloat64(t)
	case nil:
		s.WriteNil()
	default:
		if s.Error == nil {
			s.Error = fmt.Errorf("jsoniter: unsupported tree value %T", v)
		}
	}
}
