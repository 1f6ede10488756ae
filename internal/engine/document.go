package engine

import (
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

// CompileDocument compiles every definition in order, then the root. A name
// defined twice keeps its first position and its last type.
//
// Dangling references are not detected here; producers must only reference
// names present in defs.
func CompileDocument(defs []ir.Definition, root ir.Type, omitRequired bool) *js.Document {
	doc := &js.Document{Definitions: make([]js.Definition, 0, len(defs))}
	index := make(map[string]int, len(defs))
	for _, d := range defs {
		compiled := CompileType(d.Type, omitRequired)
		if i, ok := index[d.Name]; ok {
			doc.Definitions[i].Schema = compiled
			continue
		}
		index[d.Name] = len(doc.Definitions)
		doc.Definitions = append(doc.Definitions, js.Definition{Name: d.Name, Schema: compiled})
	}
	doc.Root = CompileType(root, omitRequired)
	return doc
}
