// Package schemac compiles an internal type description into a JSON Schema
// document.
//
// It provides:
//
// - A type model (package ir) covering primitives, records, unions, arrays,
// maps, tuples, named references and validation constraints
// - Compilation of that model into JSON Schema nodes (package jsonschema),
// including translation of range, size, regex and logical constraints
// - Pluggable JSON drivers for writing the compiled document
// - A YAML/JSON type description loader (package source) and a CLI
// (cmd/schemac)
//
// Design policy:
// - Keep only public APIs in the root package; compilation lives in
// internal/engine.
// - Compilation is total and returns no error. Problems in a type
// description are reported as Issues by the loader, before compilation.
// - Recursive types go through named definitions and $ref; references are
// never inlined.
//
// Typical usage:
//
//	s := ir.Schema{
//		Definitions: []ir.Definition{{Name: "Node", Type: node}},
//		Root:        ir.Ref("Node"),
//	}
//	doc := schemac.Compile(s)
//	err := schemac.Write(os.Stdout, doc, schemac.WriteOpt{Indent: "  "})
package schemac
