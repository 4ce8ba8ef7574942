package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = V(500, 300)

// screen converts a math-convention offset into a screen pointer position.
func screen(dx, dy float64) Vec2 {
	return origin.Add(V(dx, -dy))
}

func TestResolveAngleRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 3 {
		for _, snap := range []bool{true, false} {
			a := Radians(float64(deg) + 0.25)
			res := Resolve(screen(150*math.Cos(a), 150*math.Sin(a)), origin, snap, Vec2{})
			assert.GreaterOrEqual(t, res.Angle, 0.0, "deg=%d snap=%v", deg, snap)
			assert.Less(t, res.Angle, Tau, "deg=%d snap=%v", deg, snap)
			assert.InDelta(t, 1.0, res.Unit.Len(), 1e-12)
		}
	}
}

func TestResolveRightOfOrigin(t *testing.T) {
	res := Resolve(screen(120, 0), origin, true, Vec2{})

	assert.Equal(t, V(1, 0), res.Unit)
	assert.Equal(t, 0.0, res.Angle)
	assert.Equal(t, 0.0, res.Theta())
	assert.Equal(t, Straight, res.Boundary)
	assert.True(t, res.FromAbove)
	assert.False(t, res.Degenerate)
}

func TestResolveFortyFiveDegrees(t *testing.T) {
	res := Resolve(screen(1, 1), origin, false, Vec2{})

	assert.InDelta(t, math.Pi/4, res.Angle, 1e-12)
	assert.InDelta(t, 45.0, Degrees(res.Angle), 1e-9)
	assert.Equal(t, Regular, res.Boundary)
	assert.False(t, res.Snapped)
}

func TestResolveSnapsNearNegativeXAxis(t *testing.T) {
	res := Resolve(screen(-1, 0.05), origin, true, Vec2{})

	assert.True(t, res.Snapped)
	assert.Equal(t, V(-1, 0), res.Unit)
	assert.Equal(t, math.Pi, res.Angle)
	assert.Equal(t, Straight, res.Boundary)
	assert.True(t, res.FromAbove)
	assert.True(t, res.FromLeft)
}

func TestResolveSnapTargets(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		unit     Vec2
		boundary Boundary
	}{
		{"up low edge", 84.5, V(0, 1), RightAngleUp},
		{"up high edge", 95.9, V(0, 1), RightAngleUp},
		{"left", 183, V(-1, 0), Straight},
		{"down", 268, V(0, -1), RightAngleDown},
		{"seam above", 5.5, V(1, 0), Straight},
		{"seam below", 355, V(1, 0), Straight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Radians(tt.deg)
			res := Resolve(screen(math.Cos(a), math.Sin(a)), origin, true, Vec2{})
			assert.True(t, res.Snapped)
			assert.Equal(t, tt.unit, res.Unit)
			assert.Equal(t, tt.boundary, res.Boundary)
		})
	}
}

func TestResolveOutsideThresholdDoesNotSnap(t *testing.T) {
	for _, deg := range []float64{6.5, 83.5, 96.5, 173, 187, 263, 277, 353.5} {
		a := Radians(deg)
		res := Resolve(screen(math.Cos(a), math.Sin(a)), origin, true, Vec2{})
		assert.False(t, res.Snapped, "deg=%v", deg)
		assert.Equal(t, Regular, res.Boundary, "deg=%v", deg)
	}
}

func TestResolveSeamSideHint(t *testing.T) {
	above := Resolve(screen(1, 0.01), origin, true, Vec2{})
	below := Resolve(screen(1, -0.01), origin, true, Vec2{})

	require.Equal(t, V(1, 0), above.Unit)
	require.Equal(t, V(1, 0), below.Unit)
	assert.Equal(t, 0.0, above.Angle)
	assert.Equal(t, 0.0, below.Angle)
	assert.Equal(t, 0.0, above.Theta())
	assert.Equal(t, Tau, below.Theta())
}

func TestResolveSnapIsIdempotent(t *testing.T) {
	for deg := 0.25; deg < 360; deg += 0.5 {
		a := Radians(deg)
		first := Resolve(screen(80*math.Cos(a), 80*math.Sin(a)), origin, true, Vec2{})
		again := Resolve(screen(first.Unit.X, first.Unit.Y), origin, true, Vec2{})
		if first.Snapped {
			assert.Equal(t, first.Unit, again.Unit, "deg=%v", deg)
			continue
		}
		assert.InDelta(t, first.Unit.X, again.Unit.X, 1e-9, "deg=%v", deg)
		assert.InDelta(t, first.Unit.Y, again.Unit.Y, 1e-9, "deg=%v", deg)
	}
}

func TestResolveDegenerateInput(t *testing.T) {
	t.Run("first frame defaults to zero", func(t *testing.T) {
		res := Resolve(origin, origin, false, Vec2{})
		assert.True(t, res.Degenerate)
		assert.Equal(t, V(1, 0), res.Unit)
		assert.Equal(t, 0.0, res.Angle)
	})

	t.Run("holds previous direction", func(t *testing.T) {
		prev := Resolve(screen(-3, 4), origin, false, Vec2{})
		res := Resolve(origin, origin, false, prev.Raw)
		assert.True(t, res.Degenerate)
		assert.InDelta(t, prev.Unit.X, res.Unit.X, 1e-12)
		assert.InDelta(t, prev.Unit.Y, res.Unit.Y, 1e-12)
		assert.InDelta(t, prev.Angle, res.Angle, 1e-12)
	})
}

func TestDirectionReportsDegenerateInput(t *testing.T) {
	_, err := origin.Direction(origin)
	assert.ErrorIs(t, err, ErrDegenerateInput)

	u, err := V(503, 304).Direction(origin)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
}

func TestBoundaryOf(t *testing.T) {
	assert.Equal(t, Straight, BoundaryOf(V(1, 0)))
	assert.Equal(t, Straight, BoundaryOf(V(-1, 0)))
	assert.Equal(t, RightAngleUp, BoundaryOf(V(0, 1)))
	assert.Equal(t, RightAngleDown, BoundaryOf(V(0, -1)))
	assert.Equal(t, Regular, BoundaryOf(V(math.Sqrt2/2, math.Sqrt2/2)))
}
