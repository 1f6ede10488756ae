package schemac

import (
	"bytes"
	"fmt"
	"io"

	eng "github.com/reoring/schemac/internal/engine"
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

// Compile converts s into a JSON Schema document. It never fails: a
// well-formed ir.Schema always compiles. Producers are responsible for
// s.Root and every definition being non-nil, and for references naming
// entries of s.Definitions.
//
// Compile does not mutate s and shares no state between calls, so several
// compilations may run concurrently over the same definitions.
func Compile(s ir.Schema, opts ...CompileOpt) *js.Document {
	var opt CompileOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	return eng.CompileDocument(s.Definitions, s.Root, opt.OmitRequired)
}

// CompileType compiles a single type without a definitions table. Any
// Reference in t still renders as "#/definitions/<name>".
func CompileType(t ir.Type, opts ...CompileOpt) js.Node {
	var opt CompileOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	return eng.CompileType(t, opt.OmitRequired)
}

// Write renders doc through the configured JSON driver.
func Write(w io.Writer, doc *js.Document, opts ...WriteOpt) error {
	var opt WriteOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	d := opt.Driver
	if d == nil {
		d = CurrentJSONDriver()
	}
	if err := d.Encode(w, doc.Tree(opt.SchemaURI), opt.Indent); err != nil {
		return fmt.Errorf("schemac: write schema (%s): %w", d.Name(), err)
	}
	return nil
}

// ToSchema compiles s and returns the rendered JSON Schema text.
func ToSchema(s ir.Schema, copt CompileOpt, wopt WriteOpt) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, Compile(s, copt), wopt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
