package scene

import (
	"fmt"

	"unit-circle.klederson.com/internal/config"
	"unit-circle.klederson.com/internal/trig"
)

// Canvas is the fixed canvas size in pixels.
var Canvas = trig.V(config.CanvasWidth, config.CanvasHeight)

// Origin is the canvas centre.
var Origin = Canvas.Scale(0.5)

// Frame is one fully derived picture. Nothing in it survives to the next
// frame except what the caller chooses to keep (see Resolution.Raw).
type Frame struct {
	View       ViewConfig
	Pointer    trig.Vec2
	Resolution trig.Resolution
	State      trig.State
}

// Compute resolves the pointer and builds the trig geometry for one frame.
// prev is the previous frame's pre-snap direction, used when the pointer
// sits exactly on the origin.
func Compute(view ViewConfig, pointer, prev trig.Vec2) Frame {
	res := trig.Resolve(pointer, Origin, view.Snap, prev)
	return Frame{
		View:       view,
		Pointer:    pointer,
		Resolution: res,
		State:      trig.Build(res, Origin, float64(view.Radius), Canvas),
	}
}

// AngleLabel formats theta in the unit the view asks for.
func AngleLabel(theta float64, radians bool) string {
	if radians {
		return fmt.Sprintf("%.2f rad", trig.Round2(theta))
	}
	return fmt.Sprintf("%.2f °", trig.Round2(trig.Degrees(theta)))
}
