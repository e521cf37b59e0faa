package curve

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/vector"
)

// AppendToRasterizer adds an outline-level piecewise to a
// [golang.org/x/image/vector.Rasterizer]. Every segment is emitted as
// exactly one cubic and every contour is closed explicitly, so the
// rasterizer sees a well-formed path without the redundant line elements
// that [AppendContourToPath] produces for degenerate segments.
func AppendToRasterizer(pw Piecewise[Piecewise[Bezier]], r *vector.Rasterizer) {
	for _, contour := range pw.curves {
		first := true
		for _, bz := range contour.curves {
			cp := bz.ControlPoints()
			if first {
				r.MoveTo(float32(cp[0].X), float32(cp[0].Y))
				first = false
			}
			r.CubeTo(
				float32(cp[1].X), float32(cp[1].Y),
				float32(cp[2].X), float32(cp[2].Y),
				float32(cp[3].X), float32(cp[3].Y),
			)
		}
		if !first {
			r.ClosePath()
		}
	}
}

// AppendToAdder adds an outline-level piecewise to a
// [github.com/srwiley/rasterx.Adder], one cubic per segment with each
// contour closed. Coordinates are converted to 26.6 fixed point.
func AppendToAdder(pw Piecewise[Piecewise[Bezier]], a rasterx.Adder) {
	for _, contour := range pw.curves {
		first := true
		for _, bz := range contour.curves {
			cp := bz.ControlPoints()
			if first {
				a.Start(rasterx.ToFixedP(cp[0].X, cp[0].Y))
				first = false
			}
			a.CubeBezier(
				rasterx.ToFixedP(cp[1].X, cp[1].Y),
				rasterx.ToFixedP(cp[2].X, cp[2].Y),
				rasterx.ToFixedP(cp[3].X, cp[3].Y),
			)
		}
		if !first {
			a.Stop(true)
		}
	}
}
