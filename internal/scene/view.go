package scene

import "unit-circle.klederson.com/internal/config"

// ViewConfig is the session state changed by keyboard input.
type ViewConfig struct {
	Snap    bool // Lock onto the axis points
	Radians bool // Show angles in radians instead of degrees
	Radius  int  // Circle radius in canvas pixels
}

// DefaultView returns snapping on, degrees, default radius.
func DefaultView() ViewConfig {
	return ViewConfig{
		Snap:   true,
		Radius: config.DefaultRadius,
	}
}

// ToggleSnap flips snapping.
func (v ViewConfig) ToggleSnap() ViewConfig {
	v.Snap = !v.Snap
	return v
}

// ToggleRadians flips the angle unit.
func (v ViewConfig) ToggleRadians() ViewConfig {
	v.Radians = !v.Radians
	return v
}

// Grow increases the radius by one step up to MaxRadius.
func (v ViewConfig) Grow() ViewConfig {
	v.Radius = ClampRadius(v.Radius + config.RadiusStep)
	return v
}

// Shrink decreases the radius by one step down to MinRadius.
func (v ViewConfig) Shrink() ViewConfig {
	v.Radius = ClampRadius(v.Radius - config.RadiusStep)
	return v
}

// ClampRadius bounds r to [MinRadius, MaxRadius].
func ClampRadius(r int) int {
	if r < config.MinRadius {
		return config.MinRadius
	}
	if r > config.MaxRadius {
		return config.MaxRadius
	}
	return r
}
