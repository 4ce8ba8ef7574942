package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-circle.klederson.com/internal/trig"
)

type op struct {
	kind  string
	color Color
	seg   trig.Segment
	text  string
}

// recorder is a Surface that keeps every call.
type recorder struct {
	ops []op
}

func (r *recorder) Clear(bg Color) { r.ops = append(r.ops, op{kind: "clear", color: bg}) }
func (r *recorder) Line(seg trig.Segment, c Color, _ float64) {
	r.ops = append(r.ops, op{kind: "line", color: c, seg: seg})
}
func (r *recorder) Circle(_ trig.Vec2, _ float64, c Color, _ float64) {
	r.ops = append(r.ops, op{kind: "circle", color: c})
}
func (r *recorder) Arc(_ trig.Arc, c Color, _ float64) { r.ops = append(r.ops, op{kind: "arc", color: c}) }
func (r *recorder) Rect(_ trig.Square, c Color, _ float64) {
	r.ops = append(r.ops, op{kind: "rect", color: c})
}
func (r *recorder) Text(t Text) { r.ops = append(r.ops, op{kind: "text", color: t.Color, text: t.S}) }

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func TestComputeUsesCanvasCentre(t *testing.T) {
	f := Compute(DefaultView(), trig.V(700, 300), trig.Vec2{})

	assert.Equal(t, trig.V(500, 300), f.State.Origin)
	assert.Equal(t, 0.0, f.Resolution.Angle)
	assert.InDelta(t, 700, f.State.Point.X, 1e-9)
	assert.Equal(t, 200.0, f.State.Radius)
}

func TestPaintDrawsEverySegment(t *testing.T) {
	f := Compute(DefaultView(), trig.V(600, 200), trig.Vec2{})
	rec := &recorder{}
	Paint(rec, f, LightTheme)

	require.NotEmpty(t, rec.ops)
	assert.Equal(t, "clear", rec.ops[0].kind)
	assert.Equal(t, 1, rec.count("circle"))
	// two axes, radius and six ratio segments
	assert.Equal(t, 9, rec.count("line"))
	assert.Equal(t, 1, rec.count("arc"))
	assert.Equal(t, 0, rec.count("rect"))
	assert.Contains(t, rec.texts(), "θ = 45.00 °")
	assert.Contains(t, rec.texts(), "(-1, 0)")
	assert.Contains(t, rec.texts(), "IV")
}

func TestPaintRightAngleMarker(t *testing.T) {
	f := Compute(DefaultView(), trig.V(505, 100), trig.Vec2{})
	rec := &recorder{}
	Paint(rec, f, LightTheme)

	assert.Equal(t, 1, rec.count("rect"))
	assert.Equal(t, 0, rec.count("arc"))
}

func TestPaintSkipsEmptyArc(t *testing.T) {
	f := Compute(DefaultView(), trig.V(900, 298), trig.Vec2{})
	rec := &recorder{}
	Paint(rec, f, LightTheme)

	assert.Equal(t, 0, rec.count("arc"))
	assert.Equal(t, 0, rec.count("rect"))
}

func TestHUD(t *testing.T) {
	view := DefaultView().ToggleSnap()
	f := Compute(view, trig.V(501, 299), trig.Vec2{})
	lines := HUD(f, LightTheme)

	var got []string
	for _, l := range lines {
		got = append(got, l.S)
	}
	assert.Equal(t, []string{
		"Snap(S): OFF",
		"Radians(R): OFF",
		strings.Repeat("-", 20),
		"Unit: (0.71, 0.71)",
		"Angle 45.00 °",
		"Sin(θ) = 0.71",
		"Cos(θ) = 0.71",
		"Tan(θ) = 1.00",
		"Csc(θ) = 1.41",
		"Sec(θ) = 1.41",
		"Cot(θ) = 1.00",
	}, got)
	assert.Equal(t, LightTheme.Muted, lines[0].Color)
	assert.Equal(t, LightTheme.Tan, lines[7].Color)
}

func TestHUDUndefinedAtHalfTurn(t *testing.T) {
	view := DefaultView().ToggleRadians()
	f := Compute(view, trig.V(400, 298), trig.Vec2{})
	lines := HUD(f, LightTheme)

	assert.Equal(t, "Radians(R): ON", lines[1].S)
	assert.Equal(t, LightTheme.Ink, lines[1].Color)
	assert.Equal(t, "Angle 3.14 rad", lines[4].S)
	assert.Equal(t, "Csc(θ) = undefined", lines[8].S)
	assert.Equal(t, "Cot(θ) = undefined", lines[10].S)
	assert.Equal(t, "Tan(θ) = 0.00", lines[7].S)
	assert.Equal(t, "Sec(θ) = -1.00", lines[9].S)
}

func TestPaintHUD(t *testing.T) {
	f := Compute(DefaultView(), trig.V(700, 300), trig.Vec2{})
	rec := &recorder{}
	PaintHUD(rec, f, LightTheme)

	assert.Equal(t, len(HUD(f, LightTheme))+2, rec.count("text"))
	assert.Contains(t, rec.texts(), "v 1.0")
	assert.Contains(t, rec.texts(), "by ctrl-empress")
}

func TestAngleLabel(t *testing.T) {
	assert.Equal(t, "90.00 °", AngleLabel(trig.HalfPi, false))
	assert.Equal(t, "1.57 rad", AngleLabel(trig.HalfPi, true))
	assert.Equal(t, "360.00 °", AngleLabel(trig.Tau, false))
}
