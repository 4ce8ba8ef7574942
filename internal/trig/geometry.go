package trig

import (
	"math"

	"unit-circle.klederson.com/internal/config"
)

// Segment is a straight line between two canvas points.
type Segment struct {
	From, To Vec2
}

// Len returns the segment length.
func (s Segment) Len() float64 {
	return s.To.Sub(s.From).Len()
}

// Arc is a circular arc in canvas space. Start and End are math-convention
// angles (counter-clockwise, y up) in radians.
type Arc struct {
	Center     Vec2
	Radius     float64
	Start, End float64
}

// Square is an axis-aligned square given by its top-left corner.
type Square struct {
	Min  Vec2
	Side float64
}

// Values holds the six ratios for display.
type Values struct {
	Sin, Cos, Tan, Csc, Sec, Cot Value
}

// State is everything derived from one resolved angle. It is rebuilt from
// scratch every frame.
type State struct {
	Theta  float64
	Origin Vec2
	Radius float64
	Point  Vec2 // Point on the circle, canvas coordinates

	RadiusLine Segment
	Cos, Sin   Segment
	Sec, Tan   Segment
	Csc, Cot   Segment

	// RightAngle selects Corner over AngleArc as the angle marker.
	RightAngle bool
	Corner     Square
	AngleArc   Arc

	Values Values
}

// Build derives segment endpoints and ratio values for a resolved angle.
// Canvas coordinates have y down; canvas is the width/height used to clamp
// segments whose true length is infinite.
func Build(res Resolution, origin Vec2, radius float64, canvas Vec2) State {
	theta := res.Theta()
	c, s := math.Cos(theta), math.Sin(theta)

	st := State{
		Theta:  theta,
		Origin: origin,
		Radius: radius,
		Point:  origin.Add(V(radius*c, -radius*s)),
	}
	p := st.Point

	st.RadiusLine = Segment{origin, p}

	half := config.ArcDiameter / 2
	if res.Boundary == RightAngleUp {
		st.RightAngle = true
		st.Corner = Square{Min: V(origin.X, origin.Y-half), Side: half}
	} else {
		st.AngleArc = Arc{Center: origin, Radius: half, Start: 0, End: theta}
	}

	// Horizontal run to the y-axis and vertical run to the x-axis.
	st.Cos = Segment{p, V(origin.X, p.Y)}
	st.Sin = Segment{V(p.X, origin.Y), p}
	cosLen := st.Cos.Len()
	sinLen := st.Sin.Len()

	secX, ok := 0.0, false
	if !res.Boundary.CosZero() {
		adjacent := cosLen * math.Copysign(1, res.Unit.X)
		secX, ok = finite(origin.X + signedIntercept(adjacent, sinLen, math.Tan(theta), theta <= math.Pi))
	}
	if ok {
		st.Sec = Segment{origin, V(secX, origin.Y)}
		st.Tan = Segment{p, V(secX, origin.Y)}
	} else {
		edge := canvas.X
		if res.FromLeft {
			edge = 0
		}
		st.Sec = Segment{origin, V(edge, origin.Y)}
		st.Tan = Segment{p, V(edge, p.Y)}
	}

	cscY, ok := 0.0, false
	if !res.Boundary.SinZero() {
		adjacent := sinLen * math.Copysign(1, -res.Unit.Y)
		rightHalf := theta <= HalfPi || theta > ThreeHalf
		cscY, ok = finite(origin.Y + signedIntercept(adjacent, cosLen, 1/math.Tan(theta), !rightHalf))
	}
	if ok {
		st.Csc = Segment{origin, V(origin.X, cscY)}
		st.Cot = Segment{p, V(origin.X, cscY)}
	} else {
		edge := canvas.Y
		if res.FromAbove {
			edge = 0
		}
		st.Csc = Segment{origin, V(origin.X, edge)}
		st.Cot = Segment{p, V(p.X, edge)}
	}

	st.Values = values(theta, res.Boundary)
	return st
}

// signedIntercept extends an adjacent run by the opposite run scaled by a
// ratio, adding in one half-plane and subtracting in the other. It gives the
// offset from the origin to where the tangent at the circle point meets an
// axis.
func signedIntercept(adjacent, opposite, ratio float64, add bool) float64 {
	if add {
		return adjacent + opposite*ratio
	}
	return adjacent - opposite*ratio
}

func finite(x float64) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

func values(theta float64, b Boundary) Values {
	s, c := math.Sin(theta), math.Cos(theta)
	v := Values{
		Sin: Defined(s),
		Cos: Defined(c),
		Tan: Undefined,
		Sec: Undefined,
		Csc: Undefined,
		Cot: Undefined,
	}
	if !b.CosZero() {
		v.Tan = Defined(math.Tan(theta))
		v.Sec = Defined(1 / c)
	}
	if !b.SinZero() {
		v.Csc = Defined(1 / s)
		v.Cot = Defined(1 / math.Tan(theta))
	}
	return v
}
