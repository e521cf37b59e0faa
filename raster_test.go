package curve

import (
	"image"
	"testing"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type adderOp struct {
	name string
	to   fixed.Point26_6
}

// recordingAdder captures the op sequence fed to a rasterx path.
type recordingAdder struct {
	ops    []adderOp
	closed []bool
}

func (a *recordingAdder) Start(p fixed.Point26_6) {
	a.ops = append(a.ops, adderOp{"start", p})
}

func (a *recordingAdder) Line(b fixed.Point26_6) {
	a.ops = append(a.ops, adderOp{"line", b})
}

func (a *recordingAdder) QuadBezier(b, c fixed.Point26_6) {
	a.ops = append(a.ops, adderOp{"quad", c})
}

func (a *recordingAdder) CubeBezier(b, c, d fixed.Point26_6) {
	a.ops = append(a.ops, adderOp{"cube", d})
}

func (a *recordingAdder) Stop(closeLoop bool) {
	a.ops = append(a.ops, adderOp{name: "stop"})
	a.closed = append(a.closed, closeLoop)
}

func TestAppendToAdder(t *testing.T) {
	pw, err := FromOutline(Outline{unitSquare()})
	if err != nil {
		t.Fatal(err)
	}
	var rec recordingAdder
	AppendToAdder(pw, &rec)

	var names []string
	for _, op := range rec.ops {
		names = append(names, op.name)
	}
	diff(t, []string{"start", "cube", "cube", "cube", "cube", "stop"}, names)
	diff(t, []bool{true}, rec.closed)

	diff(t, rasterx.ToFixedP(0, 0), rec.ops[0].to)
	diff(t, rasterx.ToFixedP(1, 0), rec.ops[1].to)
	diff(t, rasterx.ToFixedP(0, 0), rec.ops[4].to)
}

func TestAppendToAdderMultipleContours(t *testing.T) {
	pw, err := FromOutline(Outline{unitSquare(), curvyTriangle()})
	if err != nil {
		t.Fatal(err)
	}
	var rec recordingAdder
	AppendToAdder(pw, &rec)
	diff(t, []bool{true, true}, rec.closed)

	var starts int
	for _, op := range rec.ops {
		if op.name == "start" {
			starts++
		}
	}
	if starts != 2 {
		t.Errorf("got %d starts, want 2", starts)
	}
}

func TestAppendToRasterizer(t *testing.T) {
	pw, err := FromOutline(Outline{unitSquare()})
	if err != nil {
		t.Fatal(err)
	}
	// a 6x6 square centered in an 8x8 mask
	box := pw.Transform(Translate(Vec(1, 1)).Mul(Scale(6, 6)).Apply)

	r := vector.NewRasterizer(8, 8)
	AppendToRasterizer(box, r)
	dst := image.NewAlpha(image.Rect(0, 0, 8, 8))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if got := dst.AlphaAt(4, 4).A; got != 0xff {
		t.Errorf("interior pixel: got %#02x, want 0xff", got)
	}
	if got := dst.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("exterior pixel: got %#02x, want 0x00", got)
	}
}
