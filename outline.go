package curve

// PointType tags an outline point. A contour whose first point is a move is
// open; any other leading point type means the contour closes back onto its
// first point.
type PointType int

const (
	// PointTypeCurve is an on-curve point with Bézier handles.
	PointTypeCurve PointType = iota
	// PointTypeMove starts an open contour.
	PointTypeMove
	// PointTypeLine is an on-curve point whose adjoining segments are
	// straight lines.
	PointTypeLine
)

func (pt PointType) String() string {
	switch pt {
	case PointTypeCurve:
		return "curve"
	case PointTypeMove:
		return "move"
	case PointTypeLine:
		return "line"
	default:
		return "invalid"
	}
}

// Handle is a Bézier control point attached to an outline point, either at
// an absolute position or colocated with its owner. The zero value is
// colocated, which gives the handle zero length and marks the adjoining
// segment side as a straight line.
type Handle struct {
	at    Vector
	isSet bool
}

// HandleAt returns a handle at the given absolute position.
func HandleAt(at Vector) Handle {
	return Handle{at: at, isSet: true}
}

// IsColocated reports whether the handle is colocated with its owning
// point.
func (h Handle) IsColocated() bool {
	return !h.isSet
}

// Position returns the effective control point of the handle: its absolute
// position, or owner if the handle is colocated.
func (h Handle) Position(owner Vector) Vector {
	if h.isSet {
		return h.at
	}
	return owner
}

// ContourPoint is one point of an outline contour. A is the outgoing handle
// toward the next point; B is the incoming handle from the previous one.
type ContourPoint struct {
	P    Vector
	Type PointType
	A    Handle
	B    Handle
}

// Contour is an ordered sequence of outline points forming one loop.
type Contour []ContourPoint

// Outline is a full shape: an ordered sequence of contours.
type Outline []Contour
