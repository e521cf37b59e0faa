package curve

// Curve describes curve-like values parametrized over [0, 1].
//
// The type parameter is the implementing type itself, so that Transform
// returns a value of the same concrete type. Both [Bezier] and [Piecewise]
// satisfy it, which is what allows piecewise curves to nest recursively.
type Curve[T any] interface {
	// Eval evaluates the curve at parameter t ∈ [0, 1].
	Eval(t float64) Vector
	// Derivative returns the tangent vector at parameter t ∈ [0, 1].
	Derivative(t float64) Vector
	// Bounds returns the tight axis-aligned bounding box of the curve's
	// image over its full domain.
	Bounds() Rect
	// Transform returns a new curve with every control point mapped
	// through fn.
	Transform(fn func(Vector) Vector) T
}
