package curve

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FromGlyphSegments converts a glyph outline loaded with
// [golang.org/x/image/font/sfnt.Font.LoadGlyph] into an outline-level
// piecewise curve. Quadratic segments, the common case for TrueType
// outlines, are degree-elevated to cubics; coordinates are converted from
// 26.6 fixed point.
func FromGlyphSegments(segs []sfnt.Segment) (Piecewise[Piecewise[Bezier]], error) {
	var p BezPath
	for i, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.MoveTo(fixedVec(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(fixedVec(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(fixedVec(seg.Args[0]), fixedVec(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(fixedVec(seg.Args[0]), fixedVec(seg.Args[1]), fixedVec(seg.Args[2]))
		default:
			return Piecewise[Piecewise[Bezier]]{}, fmt.Errorf("%w: sfnt op %d at segment %d", ErrUnsupportedElement, seg.Op, i)
		}
	}
	return FromPath(p)
}

func fixedVec(p fixed.Point26_6) Vector {
	return Vector{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
