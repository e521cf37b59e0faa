package curve

import "fmt"

// FromContour converts an outline contour into a piecewise curve, producing
// one [Bezier] per consecutive pair of points. Unless the contour is open
// (its first point is a move), an additional closing segment connects the
// last point back to the first, so a contour of k points produces k or k−1
// segments.
//
// Contours with fewer than two points are rejected with
// [ErrMalformedContour].
func FromContour(c Contour) (Piecewise[Bezier], error) {
	if len(c) < 2 {
		return Piecewise[Bezier]{}, fmt.Errorf("%w: %d points", ErrMalformedContour, len(c))
	}
	curves := make([]Bezier, 0, len(c))
	for i := 1; i < len(c); i++ {
		curves = append(curves, BezierBetween(c[i-1], c[i]))
	}
	if c[0].Type != PointTypeMove {
		curves = append(curves, BezierBetween(c[len(c)-1], c[0]))
	}
	return Piecewise[Bezier]{curves: curves}, nil
}

// handleFor maps a control point back to its handle form: exactly equal to
// the owning point means the degree elevation of a straight line, which
// round-trips to a colocated handle rather than a synthetic curve handle.
func handleFor(control, owner Vector) Handle {
	if control == owner {
		return Handle{}
	}
	return HandleAt(control)
}

// ToContour converts a closed piecewise curve back into an outline contour.
// Each segment contributes one point at its start whose outgoing handle is
// the segment's second control point; the incoming handle is backfilled
// from the previous segment's third control point once that segment is
// known. The first point's incoming handle comes from the final segment,
// reconnecting the loop — without it the reconstructed contour would lose
// continuity at the wraparound.
func ToContour(pw Piecewise[Bezier]) Contour {
	out := make(Contour, 0, len(pw.curves))
	var last [4]Vector
	for i, bz := range pw.curves {
		cp := bz.ControlPoints()
		pt := ContourPoint{
			P:    cp[0],
			Type: PointTypeCurve,
			A:    handleFor(cp[1], cp[0]),
		}
		if i > 0 {
			pt.B = handleFor(last[2], cp[0])
		}
		out = append(out, pt)
		last = cp
	}
	out[0].B = handleFor(last[2], out[0].P)
	return out
}

// AppendContourToPath appends a contour-level piecewise to a drawing path:
// one move to the first segment's start, then the segments in order. A
// segment whose control points satisfy cp0 == cp2 and cp1 == cp3 has both
// handles collapsed to zero length and reduces to a straight line, so a
// line element is emitted for it; a cubic element is emitted for every
// segment regardless, line or not, preserving the behavior this package has
// always had. Consumers that need one element per segment should use
// [AppendToRasterizer] or [AppendToAdder] instead.
func AppendContourToPath(pw Piecewise[Bezier], p *BezPath) {
	first := true
	for _, bz := range pw.curves {
		cp := bz.ControlPoints()
		if first {
			p.MoveTo(cp[0])
			first = false
		}
		if cp[0] == cp[2] && cp[1] == cp[3] {
			p.LineTo(cp[3])
		}
		p.CubicTo(cp[1], cp[2], cp[3])
	}
}

// FromOutline converts a full outline into a two-level piecewise curve, one
// contour-level piecewise per contour. An outline with no contours is
// rejected with [ErrEmptyPiecewise]; malformed contours are rejected with
// [ErrMalformedContour].
func FromOutline(o Outline) (Piecewise[Piecewise[Bezier]], error) {
	if len(o) == 0 {
		return Piecewise[Piecewise[Bezier]]{}, fmt.Errorf("outline: %w", ErrEmptyPiecewise)
	}
	contours := make([]Piecewise[Bezier], len(o))
	for i, c := range o {
		pc, err := FromContour(c)
		if err != nil {
			return Piecewise[Piecewise[Bezier]]{}, fmt.Errorf("contour %d: %w", i, err)
		}
		contours[i] = pc
	}
	return Piecewise[Piecewise[Bezier]]{curves: contours}, nil
}

// ToOutline converts a two-level piecewise curve back into an outline,
// mapping every contour through [ToContour].
func ToOutline(pw Piecewise[Piecewise[Bezier]]) Outline {
	out := make(Outline, len(pw.curves))
	for i, c := range pw.curves {
		out[i] = ToContour(c)
	}
	return out
}

// AppendToPath appends every contour of an outline-level piecewise to p.
func AppendToPath(pw Piecewise[Piecewise[Bezier]], p *BezPath) {
	for _, c := range pw.curves {
		AppendContourToPath(c, p)
	}
}

// ToPath converts an outline-level piecewise to a drawing path.
func ToPath(pw Piecewise[Piecewise[Bezier]]) BezPath {
	var p BezPath
	AppendToPath(pw, &p)
	return p
}

// FromPath parses a drawing path into an outline-level piecewise curve.
// Subpaths become contours, split on move and close elements; contours are
// implicitly closed, so no synthetic closing segment is added. Line and
// quadratic elements are degree-elevated to cubics on the way in.
//
// Element kinds outside the five known verbs are rejected with
// [ErrUnsupportedElement]; a path with no segments is rejected with
// [ErrEmptyPiecewise].
func FromPath(p BezPath) (Piecewise[Piecewise[Bezier]], error) {
	var contours []Piecewise[Bezier]
	var cur []Bezier
	var last Vector
	flush := func() {
		if len(cur) > 0 {
			contours = append(contours, Piecewise[Bezier]{curves: cur})
			cur = nil
		}
	}
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			flush()
			last = el.P0
		case LineToKind:
			cur = append(cur, BezierFromLine(last, el.P0))
			last = el.P0
		case QuadToKind:
			cur = append(cur, BezierFromQuad(last, el.P0, el.P1))
			last = el.P1
		case CubicToKind:
			cur = append(cur, BezierFromPoints(last, el.P0, el.P1, el.P2))
			last = el.P2
		case ClosePathKind:
			flush()
		default:
			return Piecewise[Piecewise[Bezier]]{}, fmt.Errorf("%w: kind %d at element %d", ErrUnsupportedElement, el.Kind, i)
		}
	}
	flush()
	if len(contours) == 0 {
		return Piecewise[Piecewise[Bezier]]{}, fmt.Errorf("path: %w", ErrEmptyPiecewise)
	}
	return Piecewise[Piecewise[Bezier]]{curves: contours}, nil
}
