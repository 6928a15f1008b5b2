package svgdoc

import (
	"testing"

	"github.com/shapeforge/findshape"
)

func mustParsePath(t *testing.T, d string) findshape.BezPath {
	t.Helper()
	p, err := ParsePathData(d)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParsePathAbsolute(t *testing.T) {
	p := mustParsePath(t, "M1,2 L3,4 H5 V6 Z")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(1, 2))
	want.LineTo(findshape.Pt(3, 4))
	want.LineTo(findshape.Pt(5, 4))
	want.LineTo(findshape.Pt(5, 6))
	want.ClosePath()
	diff(t, want, p)
}

func TestParsePathRelative(t *testing.T) {
	p := mustParsePath(t, "m1,2 l3,4 h5 v6 z")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(1, 2))
	want.LineTo(findshape.Pt(4, 6))
	want.LineTo(findshape.Pt(9, 6))
	want.LineTo(findshape.Pt(9, 12))
	want.ClosePath()
	diff(t, want, p)
}

func TestParsePathImplicitLineTo(t *testing.T) {
	// Coordinates after a moveto's pair continue as lineto commands.
	p := mustParsePath(t, "M0,0 1,1 2,0")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(0, 0))
	want.LineTo(findshape.Pt(1, 1))
	want.LineTo(findshape.Pt(2, 0))
	diff(t, want, p)

	p = mustParsePath(t, "m0,0 1,1 2,0")
	want = nil
	want.MoveTo(findshape.Pt(0, 0))
	want.LineTo(findshape.Pt(1, 1))
	want.LineTo(findshape.Pt(3, 1))
	diff(t, want, p)
}

func TestParsePathCurves(t *testing.T) {
	p := mustParsePath(t, "M0,0 C1,0 2,1 3,1 Q4,2 5,1")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(0, 0))
	want.CubicTo(findshape.Pt(1, 0), findshape.Pt(2, 1), findshape.Pt(3, 1))
	want.QuadTo(findshape.Pt(4, 2), findshape.Pt(5, 1))
	diff(t, want, p)
}

func TestParsePathSmoothCubic(t *testing.T) {
	// S reflects the previous cubic's second control point about the
	// current point.
	p := mustParsePath(t, "M0,0 C1,1 2,1 3,0 S5,-1 6,0")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(0, 0))
	want.CubicTo(findshape.Pt(1, 1), findshape.Pt(2, 1), findshape.Pt(3, 0))
	want.CubicTo(findshape.Pt(4, -1), findshape.Pt(5, -1), findshape.Pt(6, 0))
	diff(t, want, p)

	// Without a preceding cubic the first control point is the current
	// point itself.
	p = mustParsePath(t, "M1,1 S2,2 3,1")
	want = nil
	want.MoveTo(findshape.Pt(1, 1))
	want.CubicTo(findshape.Pt(1, 1), findshape.Pt(2, 2), findshape.Pt(3, 1))
	diff(t, want, p)
}

func TestParsePathSmoothQuad(t *testing.T) {
	p := mustParsePath(t, "M0,0 Q1,2 2,0 T4,0")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(0, 0))
	want.QuadTo(findshape.Pt(1, 2), findshape.Pt(2, 0))
	want.QuadTo(findshape.Pt(3, -2), findshape.Pt(4, 0))
	diff(t, want, p)
}

func TestParsePathCompactNumbers(t *testing.T) {
	// SVG allows omitting separators where the syntax stays unambiguous.
	p := mustParsePath(t, "M10-5L-1.5.5")
	var want findshape.BezPath
	want.MoveTo(findshape.Pt(10, -5))
	want.LineTo(findshape.Pt(-1.5, 0.5))
	diff(t, want, p)

	p = mustParsePath(t, "M1e2,2E-1L0,0")
	want = nil
	want.MoveTo(findshape.Pt(100, 0.2))
	want.LineTo(findshape.Pt(0, 0))
	diff(t, want, p)
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"1,2 3,4",               // no leading command
		"M0,0 A5,5 0 0 1 10,10", // arcs are unsupported
		"M0,0 L",                // missing coordinates
		"M0,0 X1,1",             // unknown command
	} {
		if _, err := ParsePathData(d); err == nil {
			t.Errorf("%q parsed without error", d)
		}
	}
}

func TestWritePathData(t *testing.T) {
	var p findshape.BezPath
	p.MoveTo(findshape.Pt(1, 2))
	p.LineTo(findshape.Pt(3.5, 4))
	p.QuadTo(findshape.Pt(4, 5), findshape.Pt(5, 5))
	p.CubicTo(findshape.Pt(6, 5), findshape.Pt(7, 4), findshape.Pt(7, 3))
	p.ClosePath()
	got := WritePathData(p)
	want := "M1,2 L3.5,4 Q4,5 5,5 C6,5 7,4 7,3 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathDataRoundTrip(t *testing.T) {
	p := mustParsePath(t, "M0,0 L10,0 Q15,5 10,10 C5,15 0,15 0,10 Z")
	diff(t, p, mustParsePath(t, WritePathData(p)))
}
