package curve

import (
	"errors"
	"testing"
)

func kinds(p BezPath) []PathElementKind {
	out := make([]PathElementKind, len(p))
	for i, el := range p {
		out[i] = el.Kind
	}
	return out
}

func TestAppendContourToPathStraight(t *testing.T) {
	var p BezPath
	AppendContourToPath(mustFromContour(t, unitSquare()), &p)

	// a fully collapsed segment emits both its line and its cubic form
	want := []PathElementKind{
		MoveToKind,
		LineToKind, CubicToKind,
		LineToKind, CubicToKind,
		LineToKind, CubicToKind,
		LineToKind, CubicToKind,
	}
	diff(t, want, kinds(p))

	// the paired elements land on the same point
	approx(t, Vec(1, 0), p[1].P0)
	approx(t, Vec(1, 0), p[2].P2)
	approx(t, Vec(0, 0), p[8].P2)
}

func TestAppendContourToPathCurved(t *testing.T) {
	pw := mustFromContour(t, curvyTriangle())
	var p BezPath
	AppendContourToPath(pw, &p)

	want := []PathElementKind{MoveToKind, CubicToKind, CubicToKind, CubicToKind}
	diff(t, want, kinds(p))

	cp := pw.At(0).ControlPoints()
	approx(t, cp[0], p[0].P0)
	approx(t, cp[1], p[1].P0)
	approx(t, cp[2], p[1].P1)
	approx(t, cp[3], p[1].P2)
}

func TestToPathMultipleContours(t *testing.T) {
	pw, err := FromOutline(Outline{curvyTriangle(), curvyTriangle()})
	if err != nil {
		t.Fatal(err)
	}
	p := ToPath(pw)
	want := []PathElementKind{
		MoveToKind, CubicToKind, CubicToKind, CubicToKind,
		MoveToKind, CubicToKind, CubicToKind, CubicToKind,
	}
	diff(t, want, kinds(p))
}

func TestFromPathVerbs(t *testing.T) {
	var p BezPath
	p.MoveTo(Vec(0, 0))
	p.LineTo(Vec(6, 0))
	p.QuadTo(Vec(9, 3), Vec(6, 6))
	p.CubicTo(Vec(4, 8), Vec(2, 8), Vec(0, 6))
	p.ClosePath()

	pw, err := FromPath(p)
	if err != nil {
		t.Fatal(err)
	}
	if pw.Len() != 1 {
		t.Fatalf("got %d contours, want 1", pw.Len())
	}
	c := pw.At(0)
	if c.Len() != 3 {
		t.Fatalf("got %d segments, want 3", c.Len())
	}

	// the elevated line is exact linear interpolation
	approx(t, Vec(3, 0), c.At(0).Eval(0.5))

	// the elevated quadratic reproduces the quadratic's image
	quad := func(u float64) Vector {
		p0, p1, p2 := Vec(6, 0), Vec(9, 3), Vec(6, 6)
		return p0.Lerp(p1, u).Lerp(p1.Lerp(p2, u), u)
	}
	for _, ts := range []float64{0, 0.25, 0.5, 0.75, 1} {
		approx(t, quad(ts), c.At(1).Eval(ts))
	}

	diff(t, BezierFromPoints(Vec(6, 6), Vec(4, 8), Vec(2, 8), Vec(0, 6)), c.At(2))
}

func TestFromPathMultipleSubpaths(t *testing.T) {
	var p BezPath
	p.MoveTo(Vec(0, 0))
	p.LineTo(Vec(1, 0))
	p.LineTo(Vec(1, 1))
	p.ClosePath()
	p.MoveTo(Vec(10, 10))
	p.LineTo(Vec(12, 10))

	pw, err := FromPath(p)
	if err != nil {
		t.Fatal(err)
	}
	if pw.Len() != 2 {
		t.Fatalf("got %d contours, want 2", pw.Len())
	}
	if got := pw.At(0).Len(); got != 2 {
		t.Errorf("first contour: got %d segments, want 2", got)
	}
	if got := pw.At(1).Len(); got != 1 {
		t.Errorf("second contour: got %d segments, want 1", got)
	}
}

func TestFromPathErrors(t *testing.T) {
	if _, err := FromPath(nil); !errors.Is(err, ErrEmptyPiecewise) {
		t.Errorf("empty path: got %v, want ErrEmptyPiecewise", err)
	}

	// a path of bare moves draws nothing
	onlyMoves := BezPath{MoveTo(Vec(0, 0)), MoveTo(Vec(1, 1))}
	if _, err := FromPath(onlyMoves); !errors.Is(err, ErrEmptyPiecewise) {
		t.Errorf("moves only: got %v, want ErrEmptyPiecewise", err)
	}

	bad := BezPath{MoveTo(Vec(0, 0)), {Kind: PathElementKind(42)}}
	if _, err := FromPath(bad); !errors.Is(err, ErrUnsupportedElement) {
		t.Errorf("unknown kind: got %v, want ErrUnsupportedElement", err)
	}
}

func TestPathRoundTripCurved(t *testing.T) {
	// with every join curved, no line elements are emitted and the path
	// form converts back to the identical piecewise
	pw, err := FromOutline(Outline{curvyTriangle()})
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromPath(ToPath(pw))
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != pw.Len() {
		t.Fatalf("got %d contours, want %d", back.Len(), pw.Len())
	}
	for i := range pw.Len() {
		wc, gc := pw.At(i), back.At(i)
		if wc.Len() != gc.Len() {
			t.Fatalf("contour %d: got %d segments, want %d", i, gc.Len(), wc.Len())
		}
		for j := range wc.Len() {
			diff(t, wc.At(j), gc.At(j))
		}
	}
}

func TestWriteSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Vec(0, 0))
	p.LineTo(Vec(10, 0))
	p.QuadTo(Vec(15, 5), Vec(10, 10))
	p.CubicTo(Vec(5, 12), Vec(0, 12), Vec(0, 10))
	p.ClosePath()

	want := "M0,0 L10,0 Q15,5 10,10 C5,12 0,12 0,10 Z"
	diff(t, want, p.SVG(SVGOptions{}))
}
