package findshape

import (
	"math"
	"testing"
)

func TestSubpaths(t *testing.T) {
	var p BezPath
	if got := p.Subpaths(); got != 0 {
		t.Errorf("got %d subpaths, want 0", got)
	}
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.ClosePath()
	if got := p.Subpaths(); got != 1 {
		t.Errorf("got %d subpaths, want 1", got)
	}
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 5))
	if got := p.Subpaths(); got != 2 {
		t.Errorf("got %d subpaths, want 2", got)
	}
}

func TestPathTransform(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(1, 0), Pt(1, 1))
	p.CubicTo(Pt(2, 1), Pt(2, 2), Pt(3, 2))
	p.ClosePath()

	got := p.Transform(Rotate(math.Pi / 2))
	var want BezPath
	want.MoveTo(Pt(0, 0))
	want.QuadTo(Pt(0, 1), Pt(-1, 1))
	want.CubicTo(Pt(-1, 2), Pt(-2, 2), Pt(-2, 3))
	want.ClosePath()
	for i := range want {
		assertNear(t, got[i].P0, want[i].P0, 1e-12)
		assertNear(t, got[i].P1, want[i].P1, 1e-12)
		assertNear(t, got[i].P2, want[i].P2, 1e-12)
		if got[i].Kind != want[i].Kind {
			t.Fatalf("element %d: got kind %v, want %v", i, got[i].Kind, want[i].Kind)
		}
	}
}
