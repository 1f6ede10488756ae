// Package source decodes YAML or JSON type descriptions into ir.Schema.
//
// A description has two top-level keys: "definitions", an ordered mapping
// of names to types, and "root". Types are mappings selected by their "type"
// key and validations by their "rule" key:
//
//	definitions:
//	  Node:
//	    type: object
//	    fields:
//	      value: {type: int64}
//	      next: {type: optional, of: {type: reference, name: Node}}
//	root: {type: reference, name: Node}
//
// Problems are reported as schemac.Issues with JSON Pointer paths into the
// description. Nesting is bounded by LoadOpt.MaxDepth so that the compiler,
// which recurses once per level, never sees unbounded input, and the number
// of decoded nodes, with YAML aliases expanded at each use, by
// LoadOpt.MaxNodes. The input must hold a single YAML document.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	schemac "github.com/reoring/schemac"
	"github.com/reoring/schemac/i18n"
	ir "github.com/reoring/schemac/ir"
)

// Load decodes a YAML description. JSON input is accepted as well, since
// YAML is a superset of it.
func Load(data []byte, opts ...schemac.LoadOpt) (ir.Schema, error) {
	var opt schemac.LoadOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Schema{}, schemac.Issues{issueAt(schemac.RootPath(), schemac.CodeRequired, 0, "key", "root")}
		}
		return ir.Schema{}, schemac.Issues{parseIssue(err)}
	}
	d := newDecoder(opt)
	s := d.schema(&doc)
	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		d.report(schemac.RootPath(), schemac.CodeParseError, firstContent(&extra), "expected", "single document")
	} else if !errors.Is(err, io.EOF) && !d.done() {
		d.issues = schemac.AppendIssues(d.issues, parseIssue(err))
	}
	if len(d.issues) > 0 {
		return ir.Schema{}, d.issues
	}
	return s, nil
}

// LoadJSON rejects anything that is not strict JSON before decoding it
// like Load. Comments, trailing commas and other YAML-only syntax fail with
// parse_error.
func LoadJSON(data []byte, opts ...schemac.LoadOpt) (ir.Schema, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return ir.Schema{}, schemac.Issues{parseIssue(err)}
	}
	return Load(data, opts...)
}

// LoadFile reads path and decodes it with LoadJSON for ".json" files and
// Load otherwise.
func LoadFile(path string, opts ...schemac.LoadOpt) (ir.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Schema{}, fmt.Errorf("source: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data, opts...)
	}
	return Load(data, opts...)
}

// firstContent returns the top node of a document, for its line number.
func firstContent(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

func parseIssue(err error) schemac.Issue {
	it := issueAt(schemac.RootPath(), schemac.CodeParseError, 0)
	it.Cause = err
	it.Hint = err.Error()
	return it
}

// issueAt builds an issue with a translated message; kv pairs become both
// Params and translation data.
func issueAt(p schemac.PathRef, code string, line int, kv ...any) schemac.Issue {
	it := p.Issue(code, "", kv...)
	data := make(map[string]string, len(it.Params))
	for k, v := range it.Params {
		data[k] = fmt.Sprint(v)
	}
	it.Message = i18n.T(code, data)
	it.Line = line
	return it
}
