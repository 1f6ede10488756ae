package engine_test

import (
	"reflect"
	"testing"

	eng "github.com/reoring/schemac/internal/engine"
	ir "github.com/reoring/schemac/ir"
	js "github.com/reoring/schemac/jsonschema"
)

func TestCompileValidation_Bounds(t *testing.T) {
	five := ir.Int(5)
	half := ir.Num(0.5)
	cases := []struct {
		name    string
		carried ir.Type
		in      ir.Validation
		want    js.Node
	}{
		{"maximum", &ir.Int32{}, &ir.Maximum{Value: five}, &js.Maximum{Maximum: five, Type: js.TypeInteger}},
		{"minimum", &ir.Double{}, &ir.Minimum{Value: half}, &js.Minimum{Minimum: half, Type: js.TypeNumber}},
		{"exclusive maximum", &ir.UInt64{}, &ir.ExclusiveMaximum{Value: five}, &js.ExclusiveMaximum{ExclusiveMaximum: five, Type: js.TypeInteger}},
		{"exclusive minimum", &ir.Float{}, &ir.ExclusiveMinimum{Value: half}, &js.ExclusiveMinimum{ExclusiveMinimum: half, Type: js.TypeNumber}},
		{
			"equal to is a closed interval",
			&ir.Integer{},
			&ir.EqualTo{Value: five},
			&js.AllOf{AllOf: []js.Node{
				&js.Maximum{Maximum: five, Type: js.TypeInteger},
				&js.Minimum{Minimum: five, Type: js.TypeInteger},
			}},
		},
		{
			"not equal to is strictly below or above",
			&ir.Integer{},
			&ir.NotEqualTo{Value: five},
			&js.AnyOf{AnyOf: []js.Node{
				&js.ExclusiveMaximum{ExclusiveMaximum: five, Type: js.TypeInteger},
				&js.ExclusiveMinimum{ExclusiveMinimum: five, Type: js.TypeInteger},
			}},
		},
		{"regex verbatim", &ir.String{}, &ir.Regex{Pattern: `^\d{3}$`}, &js.Regex{Pattern: `^\d{3}$`}},
		{"bound on string is tagged number", &ir.String{}, &ir.Maximum{Value: five}, &js.Maximum{Maximum: five, Type: js.TypeNumber}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := eng.CompileValidation(tc.carried, tc.in, false)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%#v want=%#v", got, tc.want)
			}
		})
	}
}

func TestCompileValidation_Combinators(t *testing.T) {
	carried := &ir.Double{}
	members := []ir.Validation{
		&ir.Minimum{Value: ir.Num(1.5)},
		&ir.ExclusiveMaximum{Value: ir.Int(10)},
	}
	compiled := []js.Node{
		&js.Minimum{Minimum: ir.Num(1.5), Type: js.TypeNumber},
		&js.ExclusiveMaximum{ExclusiveMaximum: ir.Int(10), Type: js.TypeNumber},
	}
	if got := eng.CompileValidation(carried, &ir.ValidationAllOf{Validations: members}, false); !reflect.DeepEqual(got, &js.AllOf{AllOf: compiled}) {
		t.Fatalf("allOf got=%#v", got)
	}
	if got := eng.CompileValidation(carried, &ir.ValidationAnyOf{Validations: members}, false); !reflect.DeepEqual(got, &js.AnyOf{AnyOf: compiled}) {
		t.Fatalf("anyOf got=%#v", got)
	}
	if got := eng.CompileValidation(carried, &ir.ValidationOneOf{Validations: members}, false); !reflect.DeepEqual(got, &js.OneOf{OneOf: compiled}) {
		t.Fatalf("oneOf got=%#v", got)
	}
}

func TestCompileValidation_NestedCombinatorsKeepCarriedType(t *testing.T) {
	in := &ir.ValidationOneOf{Validations: []ir.Validation{
		&ir.ValidationAllOf{Validations: []ir.Validation{&ir.Minimum{Value: ir.Int(0)}}},
		&ir.EqualTo{Value: ir.Int(-1)},
	}}
	got := eng.CompileValidation(&ir.Int64{}, in, false)
	want := &js.OneOf{OneOf: []js.Node{
		&js.AllOf{AllOf: []js.Node{&js.Minimum{Minimum: ir.Int(0), Type: js.TypeInteger}}},
		&js.AllOf{AllOf: []js.Node{
			&js.Maximum{Maximum: ir.Int(-1), Type: js.TypeInteger},
			&js.Minimum{Minimum: ir.Int(-1), Type: js.TypeInteger},
		}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%#v want=%#v", got, want)
	}
}

func TestCompileValidation_SizeGating(t *testing.T) {
	cases := []struct {
		name    string
		carried ir.Type
		limit   ir.Validation
		want    js.Node
	}{
		{
			"array minimum",
			ir.ArrayOf(&ir.Boolean{}),
			&ir.Minimum{Value: ir.Int(2)},
			&js.TypedArray{Items: &js.Boolean{}, MinSize: intp(2)},
		},
		{
			"array maximum",
			ir.ArrayOf(&ir.Boolean{}),
			&ir.Maximum{Value: ir.Int(4)},
			&js.TypedArray{Items: &js.Boolean{}, MaxSize: intp(4)},
		},
		{
			"string equal to",
			&ir.String{},
			&ir.EqualTo{Value: ir.Int(8)},
			&js.String{MinSize: intp(8), MaxSize: intp(8)},
		},
		{
			"bytestring counts as string",
			&ir.Bytestring{},
			&ir.Minimum{Value: ir.Int(1)},
			&js.String{MinSize: intp(1)},
		},
		{
			"described array keeps description",
			ir.Describe(ir.ArrayOf(&ir.Int32{}), "ids"),
			&ir.Maximum{Value: ir.Int(3)},
			&js.TypedArray{Description: "ids", Items: &js.Integer{}, MaxSize: intp(3)},
		},
		{
			"float limit truncates",
			&ir.String{},
			&ir.Maximum{Value: ir.Num(3.9)},
			&js.String{MaxSize: intp(3)},
		},
		{
			"negative limit clamps to zero",
			&ir.String{},
			&ir.Minimum{Value: ir.Int(-4)},
			&js.String{MinSize: intp(0)},
		},
		{
			"boolean drops the bound",
			&ir.Boolean{},
			&ir.Minimum{Value: ir.Int(2)},
			&js.Boolean{},
		},
		{
			"fixed size array drops the bound",
			&ir.FixedSizeTypedArray{Type: &ir.String{}, Size: 2},
			&ir.Maximum{Value: ir.Int(1)},
			&js.FixedSizeTypedArray{Items: &js.String{}, MinItems: 2, MaxItems: 2},
		},
		{
			"combinator limit on non-sizeable type drops the bound",
			&ir.Int64{},
			&ir.ValidationAnyOf{Validations: []ir.Validation{&ir.Minimum{Value: ir.Int(1)}}},
			&js.Integer{},
		},
		{
			"unsupported limit is dropped",
			&ir.String{},
			&ir.Regex{Pattern: "x"},
			&js.String{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := eng.CompileValidation(tc.carried, &ir.Size{Limit: tc.limit}, false)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%#v want=%#v", got, tc.want)
			}
		})
	}
}

func TestCompileValidation_SizeCombinatorsBranch(t *testing.T) {
	carried := ir.ArrayOf(&ir.String{})
	limits := []ir.Validation{&ir.Minimum{Value: ir.Int(1)}, &ir.Maximum{Value: ir.Int(3)}}

	gotAll := eng.CompileValidation(carried, &ir.Size{Limit: &ir.ValidationAllOf{Validations: limits}}, false)
	wantAll := &js.AllOf{AllOf: []js.Node{
		&js.TypedArray{Items: &js.String{}, MinSize: intp(1)},
		&js.TypedArray{Items: &js.String{}, MaxSize: intp(3)},
	}}
	if !reflect.DeepEqual(gotAll, wantAll) {
		t.Fatalf("allOf got=%#v want=%#v", gotAll, wantAll)
	}

	gotAny := eng.CompileValidation(&ir.String{}, &ir.Size{Limit: &ir.ValidationAnyOf{Validations: []ir.Validation{
		&ir.EqualTo{Value: ir.Int(0)},
		&ir.ValidationAllOf{Validations: []ir.Validation{&ir.Minimum{Value: ir.Int(5)}, &ir.Maximum{Value: ir.Int(9)}}},
	}}}, false)
	wantAny := &js.AnyOf{AnyOf: []js.Node{
		&js.String{MinSize: intp(0), MaxSize: intp(0)},
		&js.AllOf{AllOf: []js.Node{
			&js.String{MinSize: intp(5)},
			&js.String{MaxSize: intp(9)},
		}},
	}}
	if !reflect.DeepEqual(gotAny, wantAny) {
		t.Fatalf("anyOf got=%#v want=%#v", gotAny, wantAny)
	}
}

func TestCompileValidation_SizeBranchesDoNotShareNodes(t *testing.T) {
	got := eng.CompileValidation(&ir.String{}, &ir.Size{Limit: &ir.ValidationAllOf{Validations: []ir.Validation{
		&ir.Minimum{Value: ir.Int(1)},
		&ir.Minimum{Value: ir.Int(2)},
	}}}, false).(*js.AllOf)
	a, b := got.AllOf[0].(*js.String), got.AllOf[1].(*js.String)
	if a == b || *a.MinSize != 1 || *b.MinSize != 2 {
		t.Fatalf("branches alias each other: %#v %#v", a, b)
	}
}

func TestCompileValidation_SizeOnObjectArrayHonorsOmitRequired(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{{Name: "k", Type: &ir.String{}}}}
	got := eng.CompileValidation(ir.ArrayOf(obj), &ir.Size{Limit: &ir.Minimum{Value: ir.Int(1)}}, true).(*js.TypedArray)
	if items := got.Items.(*js.Object); len(items.Required) != 0 {
		t.Fatalf("required should be omitted, got %v", items.Required)
	}
}
