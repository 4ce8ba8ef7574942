package ui

import (
	"fmt"

	"unit-circle.klederson.com/internal/trig"
)

// RenderStatusBar renders the bottom status bar with the pointer position,
// radius and current angle.
func RenderStatusBar(width int, pointer trig.Vec2, radius int, angle string, boundary trig.Boundary) string {
	info := fmt.Sprintf(" Pointer: %4.0f,%4.0f  Radius: %dpx  θ: %s", pointer.X, pointer.Y, radius, angle)
	if boundary != trig.Regular {
		info += "  [" + boundary.String() + "]"
	}

	return StyleStatusBar.Width(width).MaxHeight(1).Render(info)
}
