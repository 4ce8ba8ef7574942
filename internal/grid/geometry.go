package grid

import (
	"math"

	"unit-circle.klederson.com/internal/trig"
)

// clipSegment clips a segment to the rectangle [0,w]x[0,h] (Liang–Barsky).
// ok is false when nothing of the segment is inside.
func clipSegment(a, b trig.Vec2, w, h float64) (trig.Vec2, trig.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X},
		{d.X, w - a.X},
		{-d.Y, a.Y},
		{d.Y, h - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

// lineGlyph picks the character that best follows a canvas direction
// (y down).
func lineGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '*'
	}
	// fold to [0, π), y up
	a := math.Atan2(-dy, dx)
	if a < 0 {
		a += math.Pi
	}
	if a >= math.Pi {
		a -= math.Pi
	}

	sector := int(math.Round(a/(math.Pi/4))) % 4
	switch sector {
	case 0:
		return '-'
	case 1:
		return '/'
	case 2:
		return '|'
	default:
		return '\\'
	}
}
