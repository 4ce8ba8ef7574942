package trig

import "math"

// Boundary tags the axis-aligned directions where a trig ratio has a zero
// denominator.
type Boundary int

const (
	Regular        Boundary = iota
	RightAngleUp            // (0, 1), π/2: cos = 0
	Straight                // (1, 0) or (-1, 0), 0/π/2π: sin = 0
	RightAngleDown          // (0, -1), 3π/2: cos = 0
)

func (b Boundary) String() string {
	switch b {
	case RightAngleUp:
		return "right-angle-up"
	case Straight:
		return "straight"
	case RightAngleDown:
		return "right-angle-down"
	default:
		return "regular"
	}
}

// CosZero reports whether cosine vanishes (tangent and secant undefined).
func (b Boundary) CosZero() bool {
	return b == RightAngleUp || b == RightAngleDown
}

// SinZero reports whether sine vanishes (cosecant and cotangent undefined).
func (b Boundary) SinZero() bool {
	return b == Straight
}

// SnapPoint is one of the four axis-aligned unit vectors.
type SnapPoint struct {
	Unit     Vec2
	Angle    float64
	Boundary Boundary
}

// SnapPoints in the order right, left, up, down.
var SnapPoints = [4]SnapPoint{
	{Unit: Vec2{1, 0}, Angle: 0, Boundary: Straight},
	{Unit: Vec2{-1, 0}, Angle: math.Pi, Boundary: Straight},
	{Unit: Vec2{0, 1}, Angle: HalfPi, Boundary: RightAngleUp},
	{Unit: Vec2{0, -1}, Angle: ThreeHalf, Boundary: RightAngleDown},
}

var (
	snapRight = SnapPoints[0]
	snapLeft  = SnapPoints[1]
	snapUp    = SnapPoints[2]
	snapDown  = SnapPoints[3]
)

// BoundaryOf returns the boundary tag for a unit vector. Only an exact
// match with a snap point is a boundary; normalising an axis-aligned
// offset yields the snap point exactly.
func BoundaryOf(unit Vec2) Boundary {
	for _, sp := range SnapPoints {
		if unit == sp.Unit {
			return sp.Boundary
		}
	}
	return Regular
}

// Snap returns the snap point the angle locks onto, if any. The ranges
// around π/2, π and 3π/2 are inclusive; the range around 0 spans the
// 0/2π seam and is checked on both sides.
func Snap(angle, threshold float64) (SnapPoint, bool) {
	switch {
	case angle >= snapUp.Angle-threshold && angle <= snapUp.Angle+threshold:
		return snapUp, true
	case angle >= snapLeft.Angle-threshold && angle <= snapLeft.Angle+threshold:
		return snapLeft, true
	case angle >= snapDown.Angle-threshold && angle <= snapDown.Angle+threshold:
		return snapDown, true
	case angle >= Tau-threshold || angle <= threshold:
		return snapRight, true
	}
	return SnapPoint{}, false
}
