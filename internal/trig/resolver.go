package trig

import "unit-circle.klederson.com/internal/config"

// Resolution is the pointer direction resolved for one frame.
type Resolution struct {
	Unit     Vec2    // Post-snap unit vector, y up
	Raw      Vec2    // Pre-snap unit vector, y up
	Angle    float64 // Canonical angle in [0, 2π)
	Boundary Boundary

	// Side hints from the pre-snap direction.
	FromAbove bool // Raw.Y >= 0
	FromLeft  bool // Raw.X < 0

	Snapped    bool
	Degenerate bool // Pointer sat on the origin; Raw was carried over
}

// Theta returns the angle used for display and geometry. At the (1, 0)
// seam a direction approached from below reads as 2π instead of 0.
func (r Resolution) Theta() float64 {
	if r.Unit == snapRight.Unit && !r.FromAbove {
		return Tau
	}
	return r.Angle
}

// Resolve maps a pointer position to a unit direction and canonical angle.
// Positions are in screen coordinates (y down). When the pointer coincides
// with the origin the direction of prev is held; a zero prev means angle 0.
func Resolve(pointer, origin Vec2, snap bool, prev Vec2) Resolution {
	var res Resolution

	dir, err := pointer.Direction(origin)
	if err != nil {
		res.Degenerate = true
		raw, ok := prev.Normalize()
		if !ok {
			raw = snapRight.Unit
		}
		res.Raw = raw
	} else {
		res.Raw = dir.FlipY()
	}

	res.FromAbove = res.Raw.Y >= 0
	res.FromLeft = res.Raw.X < 0
	res.Unit = res.Raw

	if snap {
		if sp, ok := Snap(AngleOf(res.Raw), Radians(config.SnapThresholdDeg)); ok {
			res.Unit = sp.Unit
			res.Snapped = true
		}
	}

	res.Angle = AngleOf(res.Unit)
	res.Boundary = BoundaryOf(res.Unit)
	return res
}
