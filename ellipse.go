package findshape

// kappa is the control-point distance factor for approximating a quarter
// circle with a single cubic Bézier: 4/3 * (√2 − 1).
const kappa = 0.5522847498307936

// Ellipse is an axis-aligned ellipse, used to describe <ellipse> document
// primitives.
type Ellipse struct {
	Center Point
	Radii  Vec2
}

// NewEllipse constructs an ellipse from its center and radii.
func NewEllipse(center Point, radii Vec2) Ellipse {
	return Ellipse{Center: center, Radii: radii}
}

// Path converts the ellipse to a single closed contour of four cubic
// segments, starting at the rightmost point and sweeping through the
// bottom, left, and top extremes.
func (e Ellipse) Path() BezPath {
	cx, cy := e.Center.X, e.Center.Y
	rx, ry := e.Radii.X, e.Radii.Y
	kx, ky := kappa*rx, kappa*ry

	var p BezPath
	p.MoveTo(Pt(cx+rx, cy))
	p.CubicTo(Pt(cx+rx, cy+ky), Pt(cx+kx, cy+ry), Pt(cx, cy+ry))
	p.CubicTo(Pt(cx-kx, cy+ry), Pt(cx-rx, cy+ky), Pt(cx-rx, cy))
	p.CubicTo(Pt(cx-rx, cy-ky), Pt(cx-kx, cy-ry), Pt(cx, cy-ry))
	p.CubicTo(Pt(cx+kx, cy-ry), Pt(cx+rx, cy-ky), Pt(cx+rx, cy))
	p.ClosePath()
	return p
}

// Circle is a circle, used to describe <circle> document primitives.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle constructs a circle from its center and radius.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Path converts the circle to a single closed contour. See [Ellipse.Path].
func (c Circle) Path() BezPath {
	return Ellipse{Center: c.Center, Radii: Vec(c.Radius, c.Radius)}.Path()
}
