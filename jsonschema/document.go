package jsonschema

// DefaultSchemaURI is written as "$schema" unless a writer overrides it.
const DefaultSchemaURI = "https://json-schema.org/draft/2020-12/schema"

// Definition is one named entry of Document.Definitions.
type Definition struct {
	Name   string
	Schema Node
}

// Document is a compiled schema: the root node plus the definitions that
// Reference nodes point into.
type Document struct {
	Root        Node
	Definitions []Definition
}

// Tree renders the document with the root keywords flattened next to
// "$schema" and "definitions". An empty schemaURI selects DefaultSchemaURI.
// "definitions" is omitted when there are none.
func (d *Document) Tree(schemaURI string) Members {
	if schemaURI == "" {
		schemaURI = DefaultSchemaURI
	}
	m := Members{{Key: "$schema", Value: schemaURI}}
	m = append(m, d.Root.tree()...)
	if len(d.Definitions) > 0 {
		defs := make(Members, 0, len(d.Definitions))
		for _, def := range d.Definitions {
			defs = defs.add(def.Name, def.Schema.tree())
		}
		m = m.add("definitions", defs)
	}
	return m
}

// Lookup returns the compiled definition with the given name.
func (d *Document) Lookup(name string) (Node, bool) {
	for _, def := range d.Definitions {
		if def.Name == name {
			return def.Schema, true
		}
	}
	return nil, false
}

// MarshalJSON renders the document with DefaultSchemaURI.
func (d *Document) MarshalJSON() ([]byte, error) { return d.Tree("").MarshalJSON() }
