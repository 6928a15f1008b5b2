package findshape

import "math"

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Transforms compose by matrix multiplication and apply right to left:
// (A * B) * v == A * (B * v), so in A.Mul(B) the transform B is applied
// first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Parts describes an affine transform as a uniform scale factor, a 2×2
// linear part, and a translation, each independently optional. A nil Linear
// means the identity matrix, a nil Translate means no translation, and a
// Scale of zero is treated as 1. The scale factor multiplies all six
// coefficients, translation included.
type Parts struct {
	Scale     float64
	Linear    *[2][2]float64
	Translate *Vec2
}

// FromParts builds a transform from its parts.
func FromParts(p Parts) Affine {
	a, b, c, d := 1.0, 0.0, 0.0, 1.0
	if p.Linear != nil {
		a, b = p.Linear[0][0], p.Linear[1][0]
		c, d = p.Linear[0][1], p.Linear[1][1]
	}
	var tx, ty float64
	if p.Translate != nil {
		tx, ty = p.Translate.X, p.Translate.Y
	}
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return Affine{a * s, b * s, c * s, d * s, tx * s, ty * s}
}

// UniformScale creates an affine transform representing uniform scaling.
func UniformScale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Reflect creates an affine transform that represents reflection about the
// line point + direction * t, t ∈ [-∞, ∞].
func Reflect(pt Point, direction Vec2) Affine {
	n := Vec2{
		X: direction.Y,
		Y: -direction.X,
	}.Normalize()

	// Householder reflection matrix, with the post translation folded in.
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	aff := Affine{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		pt.X,
		pt.Y,
	}
	return aff.Mul(Translate(Vec2(pt).Negate()))
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// Mul composes two transforms. The result applies o first, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// IsFinite reports whether all coefficients are finite, i.e. neither
// infinite nor NaN.
func (aff Affine) IsFinite() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return false
		}
	}
	return true
}

// Translation returns the translation component of the transform.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// Linear returns the 2×2 linear part of the transform, in row-major order.
func (aff Affine) Linear() [2][2]float64 {
	return [2][2]float64{
		{aff.N0, aff.N2},
		{aff.N1, aff.N3},
	}
}
