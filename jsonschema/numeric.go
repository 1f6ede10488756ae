package jsonschema

import (
	"math"
	"strconv"
)

// Numeric is a bound value. Integers and floats are kept apart so that an
// integer bound is never rendered with a fractional part or rounded through
// float64.
type Numeric struct {
	i       int64
	f       float64
	isFloat bool
}

func IntValue(v int64) Numeric     { return Numeric{i: v} }
func FloatValue(v float64) Numeric { return Numeric{f: v, isFloat: true} }

func (n Numeric) IsInt() bool { return !n.isFloat }

// Int64 returns the value truncated toward zero.
func (n Numeric) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

func (n Numeric) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Size converts n to a length bound: negative and NaN values clamp to 0.
func (n Numeric) Size() int {
	if n.isFloat {
		if math.IsNaN(n.f) || n.f <= 0 {
			return 0
		}
		if n.f >= math.MaxInt {
			return math.MaxInt
		}
		return int(n.f)
	}
	if n.i < 0 {
		return 0
	}
	return int(n.i)
}

func (n Numeric) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// value is the tree representation: int64 or float64.
func (n Numeric) value() any {
	if n.isFloat {
		return n.f
	}
	return n.i
}
