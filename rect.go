package findshape

// Rect is an axis-aligned rectangle, used to describe <rect> document
// primitives and outline bounds.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromOrigin constructs a rectangle from its origin and size.
func NewRectFromOrigin(origin Point, width, height float64) Rect {
	return Rect{origin.X, origin.Y, origin.X + width, origin.Y + height}
}

// NewRectFromPoints constructs a rectangle from two opposite corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Pt(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1))
}

// UnionPoint returns the smallest rectangle that contains r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Path converts the rectangle to a single closed contour, corners in the
// order (x0,y0), (x1,y0), (x1,y1), (x0,y1).
func (r Rect) Path() BezPath {
	var p BezPath
	p.MoveTo(Pt(r.X0, r.Y0))
	p.LineTo(Pt(r.X1, r.Y0))
	p.LineTo(Pt(r.X1, r.Y1))
	p.LineTo(Pt(r.X0, r.Y1))
	p.ClosePath()
	return p
}
