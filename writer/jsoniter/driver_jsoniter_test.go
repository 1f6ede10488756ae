package jsoniter_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	schemac "github.com/reoring/schemac"
	ir "github.com/reoring/schemac/ir"
	"github.com/reoring/schemac/writer/jsoniter"
)

func normalize(t *testing.T, b []byte) any {
	t.Helper()
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("invalid JSON %s: %v", b, err)
	}
	return out
}

func sample() ir.Schema {
	return ir.Schema{
		Definitions: []ir.Definition{
			{Name: "Empty", Type: &ir.Object{}},
			{Name: "Tree", Type: &ir.Object{Fields: []ir.Field{
				{Name: "name", Type: ir.Describe(&ir.String{}, `quoted "name" & <tag>`)},
				{Name: "weight", Type: ir.Validate(&ir.Float{}, &ir.Minimum{Value: ir.Num(0.25)})},
				{Name: "children", Type: ir.ArrayOf(ir.Ref("Tree"))},
				{Name: "meta", Type: ir.Opt(ir.Ref("Empty"))},
			}}},
		},
		Root: ir.Ref("Tree"),
	}
}

func write(t *testing.T, opt schemac.WriteOpt) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := schemac.Write(&buf, schemac.Compile(sample()), opt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func TestDriver_MatchesDefault(t *testing.T) {
	for _, indent := range []string{"", "  "} {
		got := write(t, schemac.WriteOpt{Driver: jsoniter.Driver(), Indent: indent})
		want := write(t, schemac.WriteOpt{Driver: schemac.DefaultJSONDriver(), Indent: indent})
		if !reflect.DeepEqual(normalize(t, got), normalize(t, want)) {
			t.Fatalf("indent %q: drivers disagree\njsoniter=%s\ndefault=%s", indent, got, want)
		}
	}
}

func TestDriver_KeepsKeyOrder(t *testing.T) {
	out := string(write(t, schemac.WriteOpt{Driver: jsoniter.Driver()}))
	keys := []string{`"$schema"`, `"$ref"`, `"definitions"`, `"Empty"`, `"Tree"`, `"name"`, `"weight"`, `"children"`, `"meta"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(out, k)
		if i < 0 || i < last {
			t.Fatalf("key %s out of order in %s", k, out)
		}
		last = i
	}
	if !strings.Contains(out, `"properties":{}`) {
		t.Fatalf("empty object should render as {}: %s", out)
	}
}

func TestDriver_Indent(t *testing.T) {
	out := string(write(t, schemac.WriteOpt{Driver: jsoniter.Driver(), Indent: "    "}))
	if !strings.HasPrefix(out, "{\n    \"$schema\"") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("unexpected layout %q", out)
	}
}

func TestDriver_RejectsTabIndent(t *testing.T) {
	err := schemac.Write(&bytes.Buffer{}, schemac.Compile(sample()), schemac.WriteOpt{Driver: jsoniter.Driver(), Indent: "\t"})
	if err == nil || !strings.Contains(err.Error(), "(jsoniter)") {
		t.Fatalf("expected a wrapped indent error, got %v", err)
	}
}
