package findshape

import (
	"errors"
	"math"
	"testing"
)

func polyline(pts ...Point) BezPath {
	var p BezPath
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

func closedSquare() BezPath {
	p := polyline(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	p.ClosePath()
	return p
}

func TestExtractNodesOnly(t *testing.T) {
	pts, err := ExtractPoints(closedSquare(), NodesOnly)
	if err != nil {
		t.Fatal(err)
	}
	// The close command contributes the start point again.
	want := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0, 0)}
	diff(t, want, pts)
}

func TestExtractHandles(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(1, 0), Pt(2, 1), Pt(3, 1))
	pts, err := ExtractPoints(p, NodesAndHandles)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0, 0), Pt(0, 0), Pt(1, 0),
		Pt(2, 1), Pt(3, 1), Pt(3, 1),
	}
	diff(t, want, pts)
}

func TestExtractHandlesQuadRaised(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(1, 2), Pt(2, 0))
	pts, err := ExtractPoints(p, NodesAndHandles)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0, 0), Pt(0, 0), Pt(2.0/3, 4.0/3),
		Pt(4.0/3, 4.0/3), Pt(2, 0), Pt(2, 0),
	}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		assertNear(t, pts[i], want[i], 1e-12)
	}
}

func TestExtractLineHandlesCoincide(t *testing.T) {
	p := polyline(Pt(0, 0), Pt(4, 0))
	pts, err := ExtractPoints(p, NodesAndHandles)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0, 0), Pt(0, 0), Pt(0, 0),
		Pt(4, 0), Pt(4, 0), Pt(4, 0),
	}
	diff(t, want, pts)
}

func TestExtractMultiContour(t *testing.T) {
	p := closedSquare()
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 5))

	_, err := ExtractPoints(p, NodesOnly)
	var mce *MultiContourError
	if !errors.As(err, &mce) {
		t.Fatalf("got %v, want MultiContourError", err)
	}
	if mce.Contours != 2 {
		t.Errorf("got %d contours, want 2", mce.Contours)
	}

	if _, err := ExtractPoints(BezPath{}, NodesOnly); !errors.As(err, &mce) {
		t.Fatalf("got %v, want MultiContourError", err)
	}
}

func TestPointSetRenderTransform(t *testing.T) {
	ps := NewPointSet([]Point{Pt(1, 0), Pt(0, 1)}, Translate(Vec(10, 20)))
	diff(t, []Point{Pt(11, 20), Pt(10, 21)}, ps.Points())
}

func TestPointSetReversed(t *testing.T) {
	ps := NewPointSet([]Point{Pt(1, 2), Pt(3, 4), Pt(5, 6)}, Identity)
	diff(t, []Point{Pt(5, 6), Pt(3, 4), Pt(1, 2)}, ps.Reversed().Points())
}

func TestPointSetCentroidNorm(t *testing.T) {
	ps := NewPointSet([]Point{
		Pt(-0.5, -0.5), Pt(0.5, -0.5), Pt(0.5, 0.5), Pt(-0.5, 0.5),
	}, Identity)
	c := ps.Centroid()
	if c.Hypot() > 1e-12 {
		t.Errorf("got centroid %s, want origin", c)
	}
	if n := ps.Norm(); math.Abs(n-math.Sqrt2) > 1e-12 {
		t.Errorf("got norm %g, want √2", n)
	}
}
