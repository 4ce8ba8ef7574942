package app

import "unit-circle.klederson.com/internal/trig"

// PointerMsg places the pointer at a canvas position, as if the mouse had
// moved there.
type PointerMsg trig.Vec2
