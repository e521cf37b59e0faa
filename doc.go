// Package curve models font outline geometry as piecewise cubic Bézier
// curves.
//
// The package converts between three representations of the same geometry:
//
//   - the handle-based outline format used by font editors, where each
//     [ContourPoint] carries an outgoing and an incoming [Handle];
//   - the drawing-API path format ([BezPath]), a stream of move, line,
//     quadratic, cubic, and close elements;
//   - the explicit polynomial form ([Bezier]), used for evaluation,
//     bounding, and subdivision.
//
// Every segment is cubic. Lines and quadratics are degree-elevated on the
// way in (see [BezierFromLine] and [BezierFromQuad]), which keeps all
// downstream operations uniform.
//
// # Piecewise composition
//
// A [Piecewise] is an ordered, non-empty sequence of curves addressed by a
// single parameter in [0, 1]: the domain is split into equal sub-intervals,
// one per segment. Because Piecewise itself satisfies [Curve], the nesting
// Piecewise[Piecewise[Bezier]] models a whole outline: contours of
// segments, uniformly evaluable, boundable, and transformable.
//
// Values are immutable once constructed; every operation returns a new
// value. Read-only sharing across goroutines is therefore safe without
// synchronization.
package curve
