package trig

import "math"

const (
	Tau       = 2 * math.Pi
	HalfPi    = math.Pi / 2
	ThreeHalf = 3 * math.Pi / 2
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleOf returns the angle of v measured counter-clockwise from +x,
// in [0, 2π).
func AngleOf(v Vec2) float64 {
	a := math.Atan2(v.Y, v.X)
	// atan2 goes negative past π
	if a < 0 {
		a += Tau
	}
	if a >= Tau || a == 0 {
		a = 0 // also clears -0
	}
	return a
}
