package findshape

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Shape is a comparable shape: a point set in the document's global frame,
// together with the centroid captured at construction. The centroid is
// computed exactly once; the normalization operations carry it through
// arithmetically and never recompute it from the points.
//
// All operations are pure: they return a new Shape and the transform
// describing the change, leaving the receiver untouched. When inverse is
// requested the returned transform undoes the operation; this duality is
// what lets the matcher reconstruct, after a chain of normalizing steps,
// the single transform mapping the original template onto the original
// candidate's pose.
type Shape struct {
	points   PointSet
	centroid Vec2
}

// NewShape extracts a shape from a curve's path and the composed rendering
// transform in effect for it. It fails with a [MultiContourError] if the
// path has more than one contour.
func NewShape(path BezPath, render Affine, mode ExtractMode) (Shape, error) {
	pts, err := ExtractPoints(path, mode)
	if err != nil {
		return Shape{}, err
	}
	ps := NewPointSet(pts, render)
	return Shape{points: ps, centroid: ps.Centroid()}, nil
}

// Len returns the number of points.
func (s Shape) Len() int {
	return s.points.Len()
}

// Points returns the shape's point set.
func (s Shape) Points() PointSet {
	return s.points
}

// Centroid returns the centroid captured at construction, carried through
// any normalization operations applied since.
func (s Shape) Centroid() Vec2 {
	return s.centroid
}

// Reversed returns the shape with its point order reversed. Reversal does
// not move any point, so the centroid is unchanged.
func (s Shape) Reversed() Shape {
	return Shape{points: s.points.Reversed(), centroid: s.centroid}
}

// Center returns the shape translated so its centroid lies on the origin.
// The returned transform undoes the centering if inverse is set, and
// performs it otherwise.
func (s Shape) Center(inverse bool) (Shape, Affine) {
	out := Shape{points: s.points.Translated(s.centroid.Negate())}
	t := s.centroid
	if !inverse {
		t = t.Negate()
	}
	return out, FromParts(Parts{Translate: &t})
}

// RescaleTo returns the shape scaled uniformly so that its Frobenius norm
// matches o's. If either norm is zero the geometry is degenerate (all
// points coincide); the receiver is returned unchanged together with the
// identity transform and a [DegenerateGeometryError].
func (s Shape) RescaleTo(o Shape, inverse bool) (Shape, Affine, error) {
	srcSize := s.points.Norm()
	dstSize := o.points.Norm()
	if srcSize <= 0 || dstSize <= 0 {
		return s, Identity, &DegenerateGeometryError{Op: "rescale"}
	}
	f := dstSize / srcSize
	out := Shape{points: s.points.Scaled(f), centroid: s.centroid.Mul(f)}
	scale := f
	if inverse {
		scale = 1 / f
	}
	return out, FromParts(Parts{Scale: scale}), nil
}

// AlignTo solves the orthogonal Procrustes problem: it finds the orthogonal
// 2×2 matrix R minimizing ‖R·s.points − o.points‖ under the fixed
// positional correspondence, via the singular value decomposition of
// o.points · s.pointsᵀ = U·Σ·Vᵀ with R = U·Vᵀ. The determinant of R is not
// constrained, so mirror-image alignments are recovered as readily as pure
// rotations.
//
// If the factorization fails or R comes out non-finite, the receiver is
// returned unchanged with the identity transform and a
// [DegenerateGeometryError]; callers should treat that as a non-match.
func (s Shape) AlignTo(o Shape, inverse bool) (Shape, Affine, error) {
	var cov mat.Dense
	cov.Mul(o.points.m, s.points.m.T())

	var svd mat.SVD
	if !svd.Factorize(&cov, mat.SVDFull) {
		return s, Identity, &DegenerateGeometryError{Op: "align"}
	}
	var u, v, r mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	r.Mul(&u, v.T())

	for _, n := range r.RawMatrix().Data {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return s, Identity, &DegenerateGeometryError{Op: "align"}
		}
	}

	out := Shape{
		points: s.points.rotated(&r),
		centroid: Vec(
			r.At(0, 0)*s.centroid.X+r.At(0, 1)*s.centroid.Y,
			r.At(1, 0)*s.centroid.X+r.At(1, 1)*s.centroid.Y,
		),
	}
	lin := [2][2]float64{
		{r.At(0, 0), r.At(0, 1)},
		{r.At(1, 0), r.At(1, 1)},
	}
	if inverse {
		// R is orthogonal, so the transpose is the inverse.
		lin[0][1], lin[1][0] = lin[1][0], lin[0][1]
	}
	return out, FromParts(Parts{Linear: &lin}), nil
}

// Similarity returns the root-mean-square and maximum absolute
// per-coordinate differences between two co-normalized shapes. Both are
// +Inf if the point counts differ.
func (s Shape) Similarity(o Shape) (meanErr, maxErr float64) {
	if s.Len() != o.Len() {
		return math.Inf(1), math.Inf(1)
	}
	var diff mat.Dense
	diff.Sub(s.points.m, o.points.m)
	raw := diff.RawMatrix()
	var sum float64
	for i := 0; i < raw.Rows; i++ {
		for j := 0; j < raw.Cols; j++ {
			d := raw.Data[i*raw.Stride+j]
			sum += d * d
			maxErr = max(maxErr, math.Abs(d))
		}
	}
	meanErr = math.Sqrt(sum / float64(raw.Rows*raw.Cols))
	return meanErr, maxErr
}

// IsSimilar reports whether the root-mean-square error between the two
// point sets is within meanTol and the maximum absolute error within
// maxTol. Both bounds are inclusive and both must hold.
func (s Shape) IsSimilar(o Shape, meanTol, maxTol float64) bool {
	meanErr, maxErr := s.Similarity(o)
	return meanErr <= meanTol && maxErr <= maxTol
}
