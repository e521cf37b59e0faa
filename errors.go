package curve

import "errors"

// Errors reported by the parse and construction entry points. Malformed
// input is rejected there, so the evaluation methods never have to guess at
// a default curve.
var (
	// ErrEmptyPiecewise is returned when constructing a [Piecewise] with no
	// segments, or an outline with no contours.
	ErrEmptyPiecewise = errors.New("piecewise has no segments")

	// ErrMalformedContour is returned for contours with fewer than two
	// points.
	ErrMalformedContour = errors.New("malformed contour")

	// ErrUnsupportedElement is returned when a path contains an element
	// kind outside the five known verbs.
	ErrUnsupportedElement = errors.New("unsupported path element")
)
