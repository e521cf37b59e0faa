package curve

import (
	"iter"
	"math"
	"slices"
)

// Piecewise is an ordered, non-empty sequence of curves treated as one
// continuous curve over the parameter domain [0, 1]. The domain is
// partitioned into len equal-width sub-intervals, one per segment, in
// sequence order: parameter 0 is the start of the first segment, parameter
// 1 the end of the last.
//
// Piecewise satisfies [Curve] itself, so piecewise curves nest: a
// Piecewise[Bezier] models a contour and a Piecewise[Piecewise[Bezier]] a
// whole outline.
//
// The zero value has no segments and is not a valid curve; use
// [NewPiecewise] or one of the conversion functions, which reject empty
// input with [ErrEmptyPiecewise].
type Piecewise[T Curve[T]] struct {
	curves []T
}

var _ Curve[Piecewise[Bezier]] = Piecewise[Bezier]{}
var _ Curve[Piecewise[Piecewise[Bezier]]] = Piecewise[Piecewise[Bezier]]{}

// NewPiecewise returns a piecewise curve over the given segments. The
// slice is copied. Constructing a piecewise with no segments is invalid and
// returns [ErrEmptyPiecewise].
func NewPiecewise[T Curve[T]](curves []T) (Piecewise[T], error) {
	if len(curves) == 0 {
		return Piecewise[T]{}, ErrEmptyPiecewise
	}
	return Piecewise[T]{curves: slices.Clone(curves)}, nil
}

// Len returns the number of segments.
func (pw Piecewise[T]) Len() int {
	return len(pw.curves)
}

// At returns the i-th segment.
func (pw Piecewise[T]) At(i int) T {
	return pw.curves[i]
}

// Segments returns an iterator over the segments in sequence order.
func (pw Piecewise[T]) Segments() iter.Seq[T] {
	return slices.Values(pw.curves)
}

// segment maps the global parameter t onto a segment and its local
// parameter. The last sub-interval is closed at its right end, so t = 1
// lands on the final segment at local parameter 1 rather than out of range.
func (pw Piecewise[T]) segment(t float64) (T, float64) {
	if len(pw.curves) == 0 {
		panic("curve: cannot evaluate an empty piecewise")
	}
	m := float64(len(pw.curves)) * t
	i := min(int(math.Floor(m)), len(pw.curves)-1)
	return pw.curves[i], m - float64(i)
}

// Eval evaluates the composite curve at parameter t ∈ [0, 1], delegating to
// the segment owning the sub-interval that contains t.
//
// Eval panics if pw has no segments.
func (pw Piecewise[T]) Eval(t float64) Vector {
	c, local := pw.segment(t)
	return c.Eval(local)
}

// Derivative returns the tangent vector at parameter t ∈ [0, 1].
//
// Derivative panics if pw has no segments.
func (pw Piecewise[T]) Derivative(t float64) Vector {
	c, local := pw.segment(t)
	return c.Derivative(local)
}

// Bounds returns the union of all segment bounding boxes.
//
// Bounds panics if pw has no segments.
func (pw Piecewise[T]) Bounds() Rect {
	if len(pw.curves) == 0 {
		panic("curve: an empty piecewise has no bounds")
	}
	bbox := emptyRect
	for _, c := range pw.curves {
		bbox = bbox.Union(c.Bounds())
	}
	return bbox
}

// Transform returns a new piecewise with fn applied to every segment,
// recursively for nested piecewise curves.
func (pw Piecewise[T]) Transform(fn func(Vector) Vector) Piecewise[T] {
	curves := make([]T, len(pw.curves))
	for i, c := range pw.curves {
		curves[i] = c.Transform(fn)
	}
	return Piecewise[T]{curves: curves}
}

// Subdivide splits every segment of a contour at parameter t and
// concatenates both halves of each in the original order, doubling the
// segment count. The curve's image is unchanged; only the parameterization
// granularity is refined.
func Subdivide(pw Piecewise[Bezier], t float64) Piecewise[Bezier] {
	curves := make([]Bezier, 0, 2*len(pw.curves))
	for _, bz := range pw.curves {
		l, r := bz.Subdivide(t)
		curves = append(curves, l, r)
	}
	return Piecewise[Bezier]{curves: curves}
}

// SubdivideOutline applies the contour-level [Subdivide] to every contour
// of an outline.
func SubdivideOutline(pw Piecewise[Piecewise[Bezier]], t float64) Piecewise[Piecewise[Bezier]] {
	contours := make([]Piecewise[Bezier], len(pw.curves))
	for i, c := range pw.curves {
		contours[i] = Subdivide(c, t)
	}
	return Piecewise[Piecewise[Bezier]]{curves: contours}
}
