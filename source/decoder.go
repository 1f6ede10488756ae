package source

import (
	"math"

	"gopkg.in/yaml.v3"

	schemac "github.com/reoring/schemac"
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

type pendingRef struct {
	name string
	path schemac.PathRef
	node *yaml.Node
}

type decoder struct {
	opt      schemac.LoadOpt
	maxDepth int
	maxNodes int
	nodes    int
	overrun  bool
	issues   schemac.Issues
	refs     []pendingRef
}

func newDecoder(opt schemac.LoadOpt) *decoder {
	return &decoder{opt: opt, maxDepth: opt.EffectiveMaxDepth(), maxNodes: opt.EffectiveMaxNodes()}
}

// done reports whether decoding should stop early: under FailFast after
// any issue, and always once the node budget is spent.
func (d *decoder) done() bool { return d.overrun || (d.opt.FailFast && len(d.issues) > 0) }

func (d *decoder) report(p schemac.PathRef, code string, n *yaml.Node, kv ...any) {
	if d.done() {
		return
	}
	line := 0
	if n != nil {
		line = n.Line
	}
	d.issues = schemac.AppendIssues(d.issues, issueAt(p, code, line, kv...))
}

func (d *decoder) schema(doc *yaml.Node) ir.Schema {
	root := schemac.RootPath()
	n := doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			d.report(root, schemac.CodeRequired, n, "key", "root")
			return ir.Schema{}
		}
		n = n.Content[0]
	}
	m := d.mapping(n, root)
	if m == nil {
		return ir.Schema{}
	}
	var s ir.Schema
	defined := map[string]bool{}
	if defs := m.take("definitions"); defs != nil {
		dp := root.Field("definitions")
		if dm := d.mapping(defs, dp); dm != nil {
			for _, e := range dm.entries {
				if d.done() {
					break
				}
				t := d.typ(e.val, dp.Field(e.key), 1)
				defined[e.key] = true
				s.Definitions = append(s.Definitions, ir.Definition{Name: e.key, Type: t})
			}
		}
	}
	if r := m.require("root"); r != nil {
		s.Root = d.typ(r, root.Field("root"), 1)
	}
	d.finish(m)
	if !d.opt.AllowDanglingRefs {
		for _, r := range d.refs {
			if !defined[r.name] {
				d.report(r.path, schemac.CodeUnknownRef, r.node, "name", r.name)
			}
		}
	}
	return s
}

// entry is one key of a YAML mapping, kept in document order.
type entry struct {
	key  string
	keyN *yaml.Node
	val  *yaml.Node
}

// mapping is a decoded YAML mapping that tracks which keys were consumed.
type mapping struct {
	d       *decoder
	node    *yaml.Node
	path    schemac.PathRef
	entries []entry
	used    map[string]bool
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func (d *decoder) mapping(n *yaml.Node, p schemac.PathRef) *mapping {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		d.report(p, schemac.CodeInvalidType, n, "expected", "mapping")
		return nil
	}
	m := &mapping{d: d, node: n, path: p, used: map[string]bool{}}
	seen := map[string]bool{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			d.report(p, schemac.CodeInvalidType, k, "expected", "string key")
			continue
		}
		if seen[k.Value] {
			d.report(p.Field(k.Value), schemac.CodeDuplicateKey, k, "key", k.Value)
			continue
		}
		seen[k.Value] = true
		m.entries = append(m.entries, entry{key: k.Value, keyN: k, val: v})
	}
	return m
}

// take returns the value under key and marks it consumed; nil when absent.
func (m *mapping) take(key string) *yaml.Node {
	for _, e := range m.entries {
		if e.key == key {
			m.used[key] = true
			return e.val
		}
	}
	return nil
}

// require is take that reports a missing key.
func (m *mapping) require(key string) *yaml.Node {
	v := m.take(key)
	if v == nil {
		m.d.report(m.path.Field(key), schemac.CodeRequired, m.node, "key", key)
	}
	return v
}

// finish reports every key that was never taken.
func (d *decoder) finish(m *mapping) {
	for _, e := range m.entries {
		if !m.used[e.key] {
			d.report(m.path.Field(e.key), schemac.CodeUnknownKey, e.keyN, "key", e.key)
		}
	}
}

func (d *decoder) str(n *yaml.Node, p schemac.PathRef) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		d.report(p, schemac.CodeInvalidType, n, "expected", "string")
		return "", false
	}
	return n.Value, true
}

func (d *decoder) seq(n *yaml.Node, p schemac.PathRef) ([]*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		d.report(p, schemac.CodeInvalidType, n, "expected", "sequence")
		return nil, false
	}
	return n.Content, true
}

func (d *decoder) number(n *yaml.Node, p schemac.PathRef) (js.Numeric, bool) {
	n = resolve(n)
	if n != nil && n.Kind == yaml.ScalarNode {
		switch n.Tag {
		case "!!int":
			var i int64
			if err := n.Decode(&i); err == nil {
				return js.IntValue(i), true
			}
			// Out of int64 range: keep the magnitude as a float.
			var f float64
			if err := n.Decode(&f); err == nil && !math.IsInf(f, 0) {
				return js.FloatValue(f), true
			}
		case "!!float":
			var f float64
			if err := n.Decode(&f); err == nil {
				if math.IsInf(f, 0) || math.IsNaN(f) {
					d.report(p, schemac.CodeInvalidType, n, "expected", "finite number")
					return js.Numeric{}, false
				}
				return js.FloatValue(f), true
			}
		}
	}
	d.report(p, schemac.CodeInvalidType, n, "expected", "number")
	return js.Numeric{}, false
}

// depthOK reports truncated when depth exceeds the configured bound, or
// when the description expands to more nodes than allowed. Aliases are
// expanded at every use, so the node count bounds the size of the result.
func (d *decoder) depthOK(n *yaml.Node, p schemac.PathRef, depth int) bool {
	if depth > d.maxDepth {
		d.report(p, schemac.CodeTruncated, n, "max", d.maxDepth)
		return false
	}
	d.nodes++
	if d.nodes > d.maxNodes {
		d.report(p, schemac.CodeTruncated, n, "max", d.maxNodes)
		d.overrun = true
		return false
	}
	return true
}
