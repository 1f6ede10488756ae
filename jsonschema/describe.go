package jsonschema

func (s *Boolean) describe(text string) Node             { c := *s; c.Description = text; return &c }
func (s *Integer) describe(text string) Node             { c := *s; c.Description = text; return &c }
func (s *Number) describe(text string) Node              { c := *s; c.Description = text; return &c }
func (s *String) describe(text string) Node              { c := *s; c.Description = text; return &c }
func (s *Null) describe(text string) Node                { c := *s; c.Description = text; return &c }
func (s *AnyOf) describe(text string) Node               { c := *s; c.Description = text; return &c }
func (s *AllOf) describe(text string) Node               { c := *s; c.Description = text; return &c }
func (s *OneOf) describe(text string) Node               { c := *s; c.Description = text; return &c }
func (s *Regex) describe(text string) Node               { c := *s; c.Description = text; return &c }
func (s *StringEnum) describe(text string) Node          { c := *s; c.Description = text; return &c }
func (s *FixedSizeTypedArray) describe(text string) Node { c := *s; c.Description = text; return &c }
func (s *TypedArray) describe(text string) Node          { c := *s; c.Description = text; return &c }
func (s *Object) describe(text string) Node              { c := *s; c.Description = text; return &c }
func (s *Reference) describe(text string) Node           { c := *s; c.Description = text; return &c }
func (s *StringMap) describe(text string) Node           { c := *s; c.Description = text; return &c }
func (s *Tuple) describe(text string) Node               { c := *s; c.Description = text; return &c }
func (s *Maximum) describe(text string) Node             { c := *s; c.Description = text; return &c }
func (s *Minimum) describe(text string) Node             { c := *s; c.Description = text; return &c }
func (s *ExclusiveMaximum) describe(text string) Node    { c := *s; c.Description = text; return &c }
func (s *ExclusiveMinimum) describe(text string) Node    { c := *s; c.Description = text; return &c }
