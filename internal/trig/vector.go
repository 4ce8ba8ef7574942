package trig

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrDegenerateInput is reported when a direction is requested for a zero
// length offset.
var ErrDegenerateInput = errors.New("trig: zero length offset has no direction")

// Vec2 is a 2D point or vector. It shares gg.Point's layout so canvas
// geometry converts to the raster context without copying fields.
type Vec2 gg.Point

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2(gg.Pt(x, y))
}

// Point returns v as a gg.Point.
func (v Vec2) Point() gg.Point {
	return gg.Point(v)
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2(v.Point().Add(w.Point()))
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2(v.Point().Sub(w.Point()))
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(v.Point().Mul(s))
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return v.Point().Length()
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The second result is false for the zero vector and for non-finite input,
// which gg.Point.Normalize would turn into (0, 0) or NaN.
func (v Vec2) Normalize() (Vec2, bool) {
	if v.IsZero() {
		return Vec2{}, false
	}
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2(v.Point().Normalize()), true
}

// Direction returns the unit vector from origin towards v.
func (v Vec2) Direction(origin Vec2) (Vec2, error) {
	u, ok := v.Sub(origin).Normalize()
	if !ok {
		return Vec2{}, ErrDegenerateInput
	}
	return u, nil
}

// FlipY mirrors the vector across the x-axis, converting between screen
// (y down) and math (y up) orientation.
func (v Vec2) FlipY() Vec2 {
	return Vec2{v.X, -v.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", formatRounded(v.X), formatRounded(v.Y))
}
