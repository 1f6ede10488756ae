package ir

// TypeVisitor has one method per Type variant. Adding a variant to the
// model adds a method here, so every visitor stops compiling until it
// handles the new case.
type TypeVisitor[R any] interface {
	VisitBoolean(*Boolean) R
	VisitInt32(*Int32) R
	VisitInt64(*Int64) R
	VisitUInt32(*UInt32) R
	VisitUInt64(*UInt64) R
	VisitInteger(*Integer) R
	VisitFloat(*Float) R
	VisitDouble(*Double) R
	VisitString(*String) R
	VisitBytestring(*Bytestring) R
	VisitVectorstring(*Vectorstring) R
	VisitAnyOf(*AnyOf) R
	VisitDescription(*Description) R
	VisitFixedSizeTypedArray(*FixedSizeTypedArray) R
	VisitLiteral(*Literal) R
	VisitObject(*Object) R
	VisitOptional(*Optional) R
	VisitReference(*Reference) R
	VisitStringMap(*StringMap) R
	VisitTuple(*Tuple) R
	VisitTypedArray(*TypedArray) R
	VisitValidated(*Validated) R
}

// ValidationVisitor has one method per Validation variant.
type ValidationVisitor[R any] interface {
	VisitValidationAllOf(*ValidationAllOf) R
	VisitValidationAnyOf(*ValidationAnyOf) R
	VisitValidationOneOf(*ValidationOneOf) R
	VisitRegex(*Regex) R
	VisitSize(*Size) R
	VisitExclusiveMaximum(*ExclusiveMaximum) R
	VisitExclusiveMinimum(*ExclusiveMinimum) R
	VisitMaximum(*Maximum) R
	VisitMinimum(*Minimum) R
	VisitEqualTo(*EqualTo) R
	VisitNotEqualTo(*NotEqualTo) R
}

// VisitType dispatches t to the matching method of v.
func VisitType[R any](t Type, v TypeVisitor[R]) R {
	a := &typeAdapter[R]{v: v}
	t.accept(a)
	return a.out
}

// VisitValidation dispatches c to the matching method of v.
func VisitValidation[R any](c Validation, v ValidationVisitor[R]) R {
	a := &validationAdapter[R]{v: v}
	c.acceptValidation(a)
	return a.out
}

type typeDispatcher interface {
	onBoolean(*Boolean)
	onInt32(*Int32)
	onInt64(*Int64)
	onUInt32(*UInt32)
	onUInt64(*UInt64)
	onInteger(*Integer)
	onFloat(*Float)
	onDouble(*Double)
	onString(*String)
	onBytestring(*Bytestring)
	onVectorstring(*Vectorstring)
	onAnyOf(*AnyOf)
	onDescription(*Description)
	onFixedSizeTypedArray(*FixedSizeTypedArray)
	onLiteral(*Literal)
	onObject(*Object)
	onOptional(*Optional)
	onReference(*Reference)
	onStringMap(*StringMap)
	onTuple(*Tuple)
	onTypedArray(*TypedArray)
	onValidated(*Validated)
}

type validationDispatcher interface {
	onValidationAllOf(*ValidationAllOf)
	onValidationAnyOf(*ValidationAnyOf)
	onValidationOneOf(*ValidationOneOf)
	onRegex(*Regex)
	onSize(*Size)
	onExclusiveMaximum(*ExclusiveMaximum)
	onExclusiveMinimum(*ExclusiveMinimum)
	onMaximum(*Maximum)
	onMinimum(*Minimum)
	onEqualTo(*EqualTo)
	onNotEqualTo(*NotEqualTo)
}

func (t *Boolean) accept(d typeDispatcher)             { d.onBoolean(t) }
func (t *Int32) accept(d typeDispatcher)               { d.onInt32(t) }
func (t *Int64) accept(d typeDispatcher)               { d.onInt64(t) }
func (t *UInt32) accept(d typeDispatcher)              { d.onUInt32(t) }
func (t *UInt64) accept(d typeDispatcher)              { d.onUInt64(t) }
func (t *Integer) accept(d typeDispatcher)             { d.onInteger(t) }
func (t *Float) accept(d typeDispatcher)               { d.onFloat(t) }
func (t *Double) accept(d typeDispatcher)              { d.onDouble(t) }
func (t *String) accept(d typeDispatcher)              { d.onString(t) }
func (t *Bytestring) accept(d typeDispatcher)          { d.onBytestring(t) }
func (t *Vectorstring) accept(d typeDispatcher)        { d.onVectorstring(t) }
func (t *AnyOf) accept(d typeDispatcher)               { d.onAnyOf(t) }
func (t *Description) accept(d typeDispatcher)         { d.onDescription(t) }
func (t *FixedSizeTypedArray) accept(d typeDispatcher) { d.onFixedSizeTypedArray(t) }
func (t *Literal) accept(d typeDispatcher)             { d.onLiteral(t) }
func (t *Object) accept(d typeDispatcher)              { d.onObject(t) }
func (t *Optional) accept(d typeDispatcher)            { d.onOptional(t) }
func (t *Reference) accept(d typeDispatcher)           { d.onReference(t) }
func (t *StringMap) accept(d typeDispatcher)           { d.onStringMap(t) }
func (t *Tuple) accept(d typeDispatcher)               { d.onTuple(t) }
func (t *TypedArray) accept(d typeDispatcher)          { d.onTypedArray(t) }
func (t *Validated) accept(d typeDispatcher)           { d.onValidated(t) }

func (c *ValidationAllOf) acceptValidation(d validationDispatcher)  { d.onValidationAllOf(c) }
func (c *ValidationAnyOf) acceptValidation(d validationDispatcher)  { d.onValidationAnyOf(c) }
func (c *ValidationOneOf) acceptValidation(d validationDispatcher)  { d.onValidationOneOf(c) }
func (c *Regex) acceptValidation(d validationDispatcher)            { d.onRegex(c) }
func (c *Size) acceptValidation(d validationDispatcher)             { d.onSize(c) }
func (c *ExclusiveMaximum) acceptValidation(d validationDispatcher) { d.onExclusiveMaximum(c) }
func (c *ExclusiveMinimum) acceptValidation(d validationDispatcher) { d.onExclusiveMinimum(c) }
func (c *Maximum) acceptValidation(d validationDispatcher)          { d.onMaximum(c) }
func (c *Minimum) acceptValidation(d validationDispatcher)          { d.onMinimum(c) }
func (c *EqualTo) acceptValidation(d validationDispatcher)          { d.onEqualTo(c) }
func (c *NotEqualTo) acceptValidation(d validationDispatcher)       { d.onNotEqualTo(c) }

type typeAdapter[R any] struct {
	v   TypeVisitor[R]
	out R
}

func (a *typeAdapter[R]) onBoolean(t *Boolean)                         { a.out = a.v.VisitBoolean(t) }
func (a *typeAdapter[R]) onInt32(t *Int32)                             { a.out = a.v.VisitInt32(t) }
func (a *typeAdapter[R]) onInt64(t *Int64)                             { a.out = a.v.VisitInt64(t) }
func (a *typeAdapter[R]) onUInt32(t *UInt32)                           { a.out = a.v.VisitUInt32(t) }
func (a *typeAdapter[R]) onUInt64(t *UInt64)                           { a.out = a.v.VisitUInt64(t) }
func (a *typeAdapter[R]) onInteger(t *Integer)                         { a.out = a.v.VisitInteger(t) }
func (a *typeAdapter[R]) onFloat(t *Float)                             { a.out = a.v.VisitFloat(t) }
func (a *typeAdapter[R]) onDouble(t *Double)                           { a.out = a.v.VisitDouble(t) }
func (a *typeAdapter[R]) onString(t *String)                           { a.out = a.v.VisitString(t) }
func (a *typeAdapter[R]) onBytestring(t *Bytestring)                   { a.out = a.v.VisitBytestring(t) }
func (a *typeAdapter[R]) onVectorstring(t *Vectorstring)               { a.out = a.v.VisitVectorstring(t) }
func (a *typeAdapter[R]) onAnyOf(t *AnyOf)                             { a.out = a.v.VisitAnyOf(t) }
func (a *typeAdapter[R]) onDescription(t *Description)                 { a.out = a.v.VisitDescription(t) }
func (a *typeAdapter[R]) onFixedSizeTypedArray(t *FixedSizeTypedArray) { a.out = a.v.VisitFixedSizeTypedArray(t) }
func (a *typeAdapter[R]) onLiteral(t *Literal)                         { a.out = a.v.VisitLiteral(t) }
func (a *typeAdapter[R]) onObject(t *Object)                           { a.out = a.v.VisitObject(t) }
func (a *typeAdapter[R]) onOptional(t *Optional)                       { a.out = a.v.VisitOptional(t) }
func (a *typeAdapter[R]) onReference(t *Reference)                     { a.out = a.v.VisitReference(t) }
func (a *typeAdapter[R]) onStringMap(t *StringMap)                     { a.out = a.v.VisitStringMap(t) }
func (a *typeAdapter[R]) onTuple(t *Tuple)                             { a.out = a.v.VisitTuple(t) }
func (a *typeAdapter[R]) onTypedArray(t *TypedArray)                   { a.out = a.v.VisitTypedArray(t) }
func (a *typeAdapter[R]) onValidated(t *Validated)                     { a.out = a.v.VisitValidated(t) }

type validationAdapter[R any] struct {
	v   ValidationVisitor[R]
	out R
}

func (a *validationAdapter[R]) onValidationAllOf(c *ValidationAllOf)   { a.out = a.v.VisitValidationAllOf(c) }
func (a *validationAdapter[R]) onValidationAnyOf(c *ValidationAnyOf)   { a.out = a.v.VisitValidationAnyOf(c) }
func (a *validationAdapter[R]) onValidationOneOf(c *ValidationOneOf)   { a.out = a.v.VisitValidationOneOf(c) }
func (a *validationAdapter[R]) onRegex(c *Regex)                       { a.out = a.v.VisitRegex(c) }
func (a *validationAdapter[R]) onSize(c *Size)                         { a.out = a.v.VisitSize(c) }
func (a *validationAdapter[R]) onExclusiveMaximum(c *ExclusiveMaximum) { a.out = a.v.VisitExclusiveMaximum(c) }
func (a *validationAdapter[R]) onExclusiveMinimum(c *ExclusiveMinimum) { a.out = a.v.VisitExclusiveMinimum(c) }
func (a *validationAdapter[R]) onMaximum(c *Maximum)                   { a.out = a.v.VisitMaximum(c) }
func (a *validationAdapter[R]) onMinimum(c *Minimum)                   { a.out = a.v.VisitMinimum(c) }
func (a *validationAdapter[R]) onEqualTo(c *EqualTo)                   { a.out = a.v.VisitEqualTo(c) }
func (a *validationAdapter[R]) onNotEqualTo(c *NotEqualTo)             { a.out = a.v.VisitNotEqualTo(c) }
