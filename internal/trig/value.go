package trig

import (
	"math"
	"strconv"
)

// Value is a trig ratio that is either a finite real or undefined.
type Value struct {
	v       float64
	defined bool
}

// Undefined marks a ratio whose denominator is zero.
var Undefined = Value{}

// Defined wraps a finite value. NaN and infinities become Undefined.
func Defined(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return Value{v: v, defined: true}
}

func (v Value) IsUndefined() bool {
	return !v.defined
}

func (v Value) String() string {
	if v.IsUndefined() {
		return "undefined"
	}
	return formatRounded(v.v)
}

// Round2 rounds to two decimal places. Negative zero comes back as 0.
func Round2(x float64) float64 {
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func formatRounded(x float64) string {
	return strconv.FormatFloat(Round2(x), 'f', 2, 64)
}
