package svgdoc

import (
	"math"
	"testing"

	"github.com/shapeforge/findshape"
)

func assertAffineNear(t *testing.T, got, want findshape.Affine, epsilon float64) {
	t.Helper()
	g := got.Coefficients()
	w := want.Coefficients()
	for i := range 6 {
		if math.Abs(g[i]-w[i]) > epsilon {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func mustParseTransform(t *testing.T, s string) findshape.Affine {
	t.Helper()
	aff, err := ParseTransform(s)
	if err != nil {
		t.Fatal(err)
	}
	return aff
}

func TestParseTransformOps(t *testing.T) {
	diff(t, findshape.Identity, mustParseTransform(t, ""))
	diff(t, findshape.Affine{N0: 1, N1: 2, N2: 3, N3: 4, N4: 5, N5: 6}, mustParseTransform(t, "matrix(1,2,3,4,5,6)"))
	diff(t, findshape.Translate(findshape.Vec(7, 0)), mustParseTransform(t, "translate(7)"))
	diff(t, findshape.Translate(findshape.Vec(7, -3)), mustParseTransform(t, "translate(7, -3)"))
	diff(t, findshape.UniformScale(2), mustParseTransform(t, "scale(2)"))
	diff(t, findshape.Scale(2, 3), mustParseTransform(t, "scale(2 3)"))

	assertAffineNear(t, mustParseTransform(t, "rotate(90)"), findshape.Rotate(math.Pi/2), 1e-12)
	assertAffineNear(t, mustParseTransform(t, "skewX(45)"), findshape.Affine{N0: 1, N1: 0, N2: 1, N3: 1, N4: 0, N5: 0}, 1e-12)
	assertAffineNear(t, mustParseTransform(t, "skewY(45)"), findshape.Affine{N0: 1, N1: 1, N2: 0, N3: 1, N4: 0, N5: 0}, 1e-12)
}

func TestParseTransformRotateAboutPoint(t *testing.T) {
	aff := mustParseTransform(t, "rotate(90, 5, 5)")
	got := findshape.Pt(6, 5).Transform(aff)
	if d := got.Distance(findshape.Pt(5, 6)); d > 1e-12 {
		t.Errorf("got %s, want (5, 6)", got)
	}
	// The pivot stays fixed.
	got = findshape.Pt(5, 5).Transform(aff)
	if d := got.Distance(findshape.Pt(5, 5)); d > 1e-12 {
		t.Errorf("pivot moved to %s", got)
	}
}

func TestParseTransformComposition(t *testing.T) {
	// Operations compose left to right: the leftmost applies last.
	aff := mustParseTransform(t, "translate(10, 0) scale(2)")
	got := findshape.Pt(1, 1).Transform(aff)
	assertAffineNear(t, aff, findshape.Translate(findshape.Vec(10, 0)).Mul(findshape.UniformScale(2)), 1e-12)
	if d := got.Distance(findshape.Pt(12, 2)); d > 1e-12 {
		t.Errorf("got %s, want (12, 2)", got)
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, s := range []string{
		"matrix(1,2,3)",
		"translate()",
		"scale(1,2,3)",
		"rotate(1,2)",
		"frobnicate(1)",
		"translate(1",
		"translate(a)",
	} {
		if _, err := ParseTransform(s); err == nil {
			t.Errorf("%q parsed without error", s)
		}
	}
}

func TestFormatTransformRoundTrip(t *testing.T) {
	aff := findshape.Affine{N0: 0.5, N1: -1.25, N2: 3, N3: 4, N4: 5.5, N5: -6}
	diff(t, aff, mustParseTransform(t, FormatTransform(aff)))
}
