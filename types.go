package schemac

// CompileOpt configures compilation.
type CompileOpt struct {
	// OmitRequired disables "required" lists on every object.
	OmitRequired bool
}

// WriteOpt configures document output.
type WriteOpt struct {
	Indent    string     // Empty for compact output.
	SchemaURI string     // Written as "$schema"; empty selects the 2020-12 draft.
	Driver    JSONDriver // nil selects the current global driver.
}

// DefaultMaxDepth bounds nesting of loaded type descriptions when
// LoadOpt.MaxDepth is zero.
const DefaultMaxDepth = 256

// DefaultMaxNodes bounds the number of decoded types and validations when
// LoadOpt.MaxNodes is zero. YAML aliases count once per use.
const DefaultMaxNodes = 100_000

// LoadOpt configures loading of type descriptions.
type LoadOpt struct {
	MaxDepth          int  // Maximum nesting of types and validations.
	MaxNodes          int  // Maximum decoded types and validations, aliases expanded.
	FailFast          bool // Stop at the first issue.
	AllowDanglingRefs bool // Accept references to names missing from definitions.
}

// EffectiveMaxDepth returns MaxDepth or DefaultMaxDepth when unset.
func (o LoadOpt) EffectiveMaxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// EffectiveMaxNodes returns MaxNodes or DefaultMaxNodes when unset.
func (o LoadOpt) EffectiveMaxNodes() int {
	if o.MaxNodes <= 0 {
		return DefaultMaxNodes
	}
	return o.MaxNodes
}
