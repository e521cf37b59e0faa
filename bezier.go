package curve

import "sort"

// Bezier is a single cubic Bézier segment, stored in explicit polynomial
// form:
//
//	x(t) = A t³ + B t² + C t + D
//	y(t) = E t³ + F t² + G t + H
//
// The coefficients are the unique algebraic expansion of four control
// points; the control points are recovered on demand with
// [Bezier.ControlPoints], which is the exact closed-form inverse of
// [BezierFromPoints]. Storing only one representation means the two views
// can never diverge.
//
// Lines and quadratics are represented by degree-elevating them to cubics
// (see [BezierFromLine] and [BezierFromQuad]); there is no separate degree
// tag, and every downstream operation deals with cubics only.
type Bezier struct {
	A, B, C, D float64
	E, F, G, H float64
}

var _ Curve[Bezier] = Bezier{}

// BezierFromPoints returns the cubic with the given control points.
func BezierFromPoints(p0, p1, p2, p3 Vector) Bezier {
	return Bezier{
		A: p3.X - 3.0*p2.X + 3.0*p1.X - p0.X,
		B: 3.0*p2.X - 6.0*p1.X + 3.0*p0.X,
		C: 3.0*p1.X - 3.0*p0.X,
		D: p0.X,

		E: p3.Y - 3.0*p2.Y + 3.0*p1.Y - p0.Y,
		F: 3.0*p2.Y - 6.0*p1.Y + 3.0*p0.Y,
		G: 3.0*p1.Y - 3.0*p0.Y,
		H: p0.Y,
	}
}

// BezierBetween returns the segment connecting an outline point to the next
// one, using the first point's outgoing handle and the next point's incoming
// handle as the interior control points. A colocated handle contributes its
// owning point, so line, quadratic, and cubic source segments all elevate to
// a valid cubic.
func BezierBetween(p, next ContourPoint) Bezier {
	return BezierFromPoints(p.P, p.A.Position(p.P), next.B.Position(next.P), next.P)
}

// BezierFromLine degree-elevates the line from p0 to p1. The elevated cubic
// evaluates to exact linear interpolation between the endpoints.
func BezierFromLine(p0, p1 Vector) Bezier {
	return BezierFromPoints(p0, p0, p1, p1)
}

// BezierFromQuad degree-elevates a quadratic with the given control points.
// The interior cubic control points sit two thirds of the way from each
// endpoint toward the quadratic's handle, which reproduces the quadratic's
// image exactly.
func BezierFromQuad(p0, p1, p2 Vector) Bezier {
	return BezierFromPoints(
		p0,
		p0.Add(p1.Sub(p0).Mul(2.0/3.0)),
		p2.Add(p1.Sub(p2).Mul(2.0/3.0)),
		p2,
	)
}

// ControlPoints reconstructs the four control points from the coefficients.
// It is the exact algebraic inverse of [BezierFromPoints].
func (bz Bezier) ControlPoints() [4]Vector {
	return [4]Vector{
		{X: bz.D, Y: bz.H},
		{X: bz.D + bz.C/3.0, Y: bz.H + bz.G/3.0},
		{X: bz.D + 2.0*bz.C/3.0 + bz.B/3.0, Y: bz.H + 2.0*bz.G/3.0 + bz.F/3.0},
		{X: bz.D + bz.C + bz.B + bz.A, Y: bz.H + bz.G + bz.F + bz.E},
	}
}

// ControlPointsSlice returns the control points as a freshly allocated slice.
func (bz Bezier) ControlPointsSlice() []Vector {
	cp := bz.ControlPoints()
	return cp[:]
}

// Start returns the curve's position at t = 0.
func (bz Bezier) Start() Vector {
	return Vector{X: bz.D, Y: bz.H}
}

// End returns the curve's position at t = 1.
func (bz Bezier) End() Vector {
	return Vector{X: bz.D + bz.C + bz.B + bz.A, Y: bz.H + bz.G + bz.F + bz.E}
}

// Eval evaluates the curve at parameter t. Generally, t is in the range
// [0, 1], but the polynomial extends beyond it.
func (bz Bezier) Eval(t float64) Vector {
	return Vector{
		X: ((bz.A*t+bz.B)*t+bz.C)*t + bz.D,
		Y: ((bz.E*t+bz.F)*t+bz.G)*t + bz.H,
	}
}

// Derivative returns the tangent vector at parameter t.
func (bz Bezier) Derivative(t float64) Vector {
	return Vector{
		X: (3.0*bz.A*t+2.0*bz.B)*t + bz.C,
		Y: (3.0*bz.E*t+2.0*bz.F)*t + bz.G,
	}
}

// extrema returns the parameters in (0, 1) at which x(t) or y(t) has a
// stationary point, in increasing order. At most four can occur.
func (bz Bezier) extrema() ([4]float64, int) {
	var out [4]float64
	var outN int
	oneCoord := func(c3, c2, c1 float64) {
		roots, n := SolveQuadratic(c1, 2.0*c2, 3.0*c3)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	oneCoord(bz.A, bz.B, bz.C)
	oneCoord(bz.E, bz.F, bz.G)
	sort.Float64s(out[:outN])
	return out, outN
}

// Bounds returns the smallest axis-aligned rectangle enclosing the curve's
// image over [0, 1]. Interior extrema are accounted for, so the result is
// tight rather than the control-point hull.
func (bz Bezier) Bounds() Rect {
	bbox := NewRectFromPoints(bz.Eval(0), bz.Eval(1))
	ex, n := bz.extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(bz.Eval(t))
	}
	return bbox
}

// Transform returns a new curve with every control point mapped through fn.
// The coefficients are recomputed from the mapped points rather than
// transformed directly, so the polynomial stays the expansion of the new
// control points even for non-affine fn.
func (bz Bezier) Transform(fn func(Vector) Vector) Bezier {
	cp := bz.ControlPoints()
	return BezierFromPoints(fn(cp[0]), fn(cp[1]), fn(cp[2]), fn(cp[3]))
}

// Subdivide splits the curve at parameter t into two cubics using the de
// Casteljau construction. The halves share the point at t and together
// exactly cover the original curve's image.
//
// Values of t outside [0, 1] are permitted; the construction is affine and
// extrapolates, without clamping.
func (bz Bezier) Subdivide(t float64) (Bezier, Bezier) {
	cp := bz.ControlPoints()
	p01 := cp[0].Lerp(cp[1], t)
	p12 := cp[1].Lerp(cp[2], t)
	p23 := cp[2].Lerp(cp[3], t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return BezierFromPoints(cp[0], p01, p012, pm),
		BezierFromPoints(pm, p123, p23, cp[3])
}
