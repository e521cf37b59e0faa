package curve

import (
	"fmt"
	"math"
)

// Vector is a 2-D point or direction. Which of the two it is depends on
// context; outline geometry uses the same representation for both.
//
// Vectors compare equal by exact component comparison.
type Vector struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vector {
	return Vector{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vector) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vector) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector) Add(o Vector) Vector {
	return Vector{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector) Sub(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vector) Mul(f float64) Vector {
	return Vector{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vector) Div(f float64) Vector {
	return Vector{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector) Negate() Vector {
	return Vector{
		X: -v.X,
		Y: -v.Y,
	}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vector) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector.Hypot].
func (v Vector) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vector) Lerp(o Vector, t float64) Vector {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the midpoint of two vectors.
func (v Vector) Midpoint(o Vector) Vector {
	return Vector{
		X: 0.5 * (v.X + o.X),
		Y: 0.5 * (v.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Hypot()
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
