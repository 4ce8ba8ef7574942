package scene

import (
	"fmt"
	"strings"

	"unit-circle.klederson.com/internal/config"
	"unit-circle.klederson.com/internal/trig"
)

// Paint draws the circle, axes, the seven segments and the on-canvas
// labels of a frame.
func Paint(s Surface, f Frame, th Theme) {
	st := f.State
	o := st.Origin
	r := st.Radius

	s.Clear(th.Background)

	s.Circle(o, r, th.Muted, config.CircleWidth)
	s.Line(trig.Segment{From: trig.V(0, o.Y), To: trig.V(Canvas.X, o.Y)}, th.Muted, config.AxisWidth)
	s.Line(trig.Segment{From: trig.V(o.X, 0), To: trig.V(o.X, Canvas.Y)}, th.Muted, config.AxisWidth)

	s.Line(st.RadiusLine, th.Ink, config.SegmentWidth)
	if st.RightAngle {
		s.Rect(st.Corner, th.Ink, 1)
	} else if st.AngleArc.End > st.AngleArc.Start {
		s.Arc(st.AngleArc, th.Ink, 1)
	}

	s.Line(st.Cos, th.CosSin, config.SegmentWidth)
	s.Line(st.Sin, th.CosSin, config.SegmentWidth)
	s.Line(st.Sec, th.Sec, config.SegmentWidth)
	s.Line(st.Tan, th.Tan, config.SegmentWidth)
	s.Line(st.Csc, th.Csc, config.SegmentWidth)
	s.Line(st.Cot, th.Cot, config.SegmentWidth)

	for _, t := range canvasLabels(f, th) {
		s.Text(t)
	}
}

func canvasLabels(f Frame, th Theme) []Text {
	st := f.State
	o := st.Origin
	r := st.Radius
	u := f.Resolution.Unit
	far := r + 40

	return []Text{
		{Pos: trig.V(o.X+25, o.Y-20), S: "θ = " + AngleLabel(st.Theta, f.View.Radians), Color: th.Ink, Size: SizeValue},
		{Pos: trig.V(st.Point.X, o.Y+20), S: "x = " + roundedString(u.X), Color: th.CosSin, Size: SizeValue, AnchorX: 0.5},
		{Pos: trig.V(o.X, st.Point.Y+20), S: "y = " + roundedString(u.Y), Color: th.CosSin, Size: SizeValue, AnchorX: 0.5},

		{Pos: trig.V(o.X+far, o.Y), S: "(1, 0)", Color: th.CosSin, Size: SizeValue, AnchorY: 0.5},
		{Pos: trig.V(o.X-far, o.Y), S: "(-1, 0)", Color: th.CosSin, Size: SizeValue, AnchorX: 1, AnchorY: 0.5},
		{Pos: trig.V(o.X, o.Y-far), S: "(0, 1)", Color: th.CosSin, Size: SizeValue, AnchorX: 0.5, AnchorY: 1},
		{Pos: trig.V(o.X, o.Y+far), S: "(0, -1)", Color: th.CosSin, Size: SizeValue, AnchorX: 0.5},

		{Pos: trig.V(o.X+r/2, o.Y-r/2), S: "I", Color: th.Quadrant, Size: SizeQuadrant, AnchorX: 0.5, AnchorY: 0.5},
		{Pos: trig.V(o.X-r/2, o.Y-r/2), S: "II", Color: th.Quadrant, Size: SizeQuadrant, AnchorX: 0.5, AnchorY: 0.5},
		{Pos: trig.V(o.X-r/2, o.Y+r/2), S: "III", Color: th.Quadrant, Size: SizeQuadrant, AnchorX: 0.5, AnchorY: 0.5},
		{Pos: trig.V(o.X+r/2, o.Y+r/2), S: "IV", Color: th.Quadrant, Size: SizeQuadrant, AnchorX: 0.5, AnchorY: 0.5},
	}
}

// Label is one line of the readout.
type Label struct {
	S     string
	Color Color
}

// HUD returns the readout lines: toggles, unit vector, angle and the six
// ratios.
func HUD(f Frame, th Theme) []Label {
	v := f.State.Values
	toggle := func(name string, on bool) Label {
		if on {
			return Label{S: name + ": ON", Color: th.Ink}
		}
		return Label{S: name + ": OFF", Color: th.Muted}
	}

	return []Label{
		toggle("Snap(S)", f.View.Snap),
		toggle("Radians(R)", f.View.Radians),
		{S: strings.Repeat("-", 20), Color: th.Ink},
		{S: "Unit: " + f.Resolution.Unit.String(), Color: th.Ink},
		{S: "Angle " + AngleLabel(f.State.Theta, f.View.Radians), Color: th.Ink},
		{S: "Sin(θ) = " + v.Sin.String(), Color: th.CosSin},
		{S: "Cos(θ) = " + v.Cos.String(), Color: th.CosSin},
		{S: "Tan(θ) = " + v.Tan.String(), Color: th.Tan},
		{S: "Csc(θ) = " + v.Csc.String(), Color: th.Csc},
		{S: "Sec(θ) = " + v.Sec.String(), Color: th.Sec},
		{S: "Cot(θ) = " + v.Cot.String(), Color: th.Cot},
	}
}

// PaintHUD writes the readout in the top-left corner plus the version
// footer, for full-canvas renders.
func PaintHUD(s Surface, f Frame, th Theme) {
	for i, l := range HUD(f, th) {
		s.Text(Text{Pos: trig.V(20, 20+20*float64(i)), S: l.S, Color: l.Color, Size: SizeLabel})
	}
	s.Text(Text{Pos: trig.V(20, Canvas.Y-40), S: "v " + config.AppVersion, Color: th.Ink, Size: SizeLabel})
	s.Text(Text{
		Pos:     trig.V(Canvas.X-20, Canvas.Y-20),
		S:       fmt.Sprintf("by %s", config.AppAuthor),
		Color:   th.Ink,
		Size:    SizeLabel,
		AnchorX: 1,
		AnchorY: 1,
	})
}

func roundedString(x float64) string {
	return trig.Defined(x).String()
}
