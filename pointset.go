package findshape

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// PointSet is an ordered sequence of 2D points stored as a 2×n dense
// matrix: row 0 holds the x coordinates, row 1 the y coordinates. Column
// order is significant; it is the sole correspondence mechanism between two
// point sets being compared.
type PointSet struct {
	m *mat.Dense
}

// NewPointSet builds a point set with every point pre-multiplied by the
// given rendering transform, so that all point sets live in one shared
// global coordinate space regardless of where in the document hierarchy the
// source curve sits.
func NewPointSet(points []Point, render Affine) PointSet {
	n := len(points)
	data := make([]float64, 2*n)
	for i, pt := range points {
		pt = pt.Transform(render)
		data[i] = pt.X
		data[n+i] = pt.Y
	}
	return PointSet{m: mat.NewDense(2, n, data)}
}

// Len returns the number of points.
func (ps PointSet) Len() int {
	_, n := ps.m.Dims()
	return n
}

// At returns the i-th point.
func (ps PointSet) At(i int) Point {
	return Pt(ps.m.At(0, i), ps.m.At(1, i))
}

// Points returns the points as a slice.
func (ps PointSet) Points() []Point {
	pts := make([]Point, ps.Len())
	for i := range pts {
		pts[i] = ps.At(i)
	}
	return pts
}

// Centroid returns the mean of all points.
func (ps PointSet) Centroid() Vec2 {
	var sx, sy float64
	n := ps.Len()
	for i := 0; i < n; i++ {
		sx += ps.m.At(0, i)
		sy += ps.m.At(1, i)
	}
	return Vec(sx/float64(n), sy/float64(n))
}

// Norm returns the Frobenius norm of the point matrix.
func (ps PointSet) Norm() float64 {
	return mat.Norm(ps.m, 2)
}

// Reversed returns a new point set with the point order reversed.
func (ps PointSet) Reversed() PointSet {
	n := ps.Len()
	out := mat.NewDense(2, n, nil)
	for i := 0; i < n; i++ {
		out.Set(0, i, ps.m.At(0, n-1-i))
		out.Set(1, i, ps.m.At(1, n-1-i))
	}
	return PointSet{m: out}
}

// Translated returns a new point set with v added to every point.
func (ps PointSet) Translated(v Vec2) PointSet {
	n := ps.Len()
	out := mat.NewDense(2, n, nil)
	for i := 0; i < n; i++ {
		out.Set(0, i, ps.m.At(0, i)+v.X)
		out.Set(1, i, ps.m.At(1, i)+v.Y)
	}
	return PointSet{m: out}
}

// Scaled returns a new point set with every coordinate multiplied by f.
func (ps PointSet) Scaled(f float64) PointSet {
	var out mat.Dense
	out.Scale(f, ps.m)
	return PointSet{m: &out}
}

// rotated returns a new point set left-multiplied by the 2×2 matrix r.
func (ps PointSet) rotated(r mat.Matrix) PointSet {
	var out mat.Dense
	out.Mul(r, ps.m)
	return PointSet{m: &out}
}

// ExtractPoints converts a path's single contour into the ordered point
// sequence used for comparison. The path must consist of exactly one
// subpath; otherwise a [MultiContourError] is returned and the caller
// should treat the shape as incomparable rather than fail the whole run.
//
// In [NodesOnly] mode the result is the on-curve node points in traversal
// order. In [NodesAndHandles] mode every node contributes the triple
// (incoming handle, node, outgoing handle): the handle of a straight
// segment coincides with its node, and quadratic segments are raised to
// cubics so that each of their neighbors owns one handle. A trailing close
// command contributes the contour's start point again as the final node, so
// closed and open tracings of the same outline remain distinguishable.
func ExtractPoints(p BezPath, mode ExtractMode) ([]Point, error) {
	if n := p.Subpaths(); n != 1 {
		return nil, &MultiContourError{Contours: n}
	}
	if p[0].Kind != MoveToKind {
		return nil, errors.New("path does not begin with a move")
	}

	type node struct {
		in, pt, out Point
	}
	var nodes []node
	start := p[0].P0
	cur := start
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			nodes = append(nodes, node{el.P0, el.P0, el.P0})
			cur = el.P0
		case LineToKind:
			nodes = append(nodes, node{el.P0, el.P0, el.P0})
			cur = el.P0
		case QuadToKind:
			// Raise the quadratic to a cubic; the shared control point
			// splits into one handle per neighboring node.
			nodes[len(nodes)-1].out = cur.Lerp(el.P0, 2.0/3.0)
			nodes = append(nodes, node{el.P1.Lerp(el.P0, 2.0/3.0), el.P1, el.P1})
			cur = el.P1
		case CubicToKind:
			nodes[len(nodes)-1].out = el.P0
			nodes = append(nodes, node{el.P1, el.P2, el.P2})
			cur = el.P2
		case ClosePathKind:
			if cur != start {
				nodes = append(nodes, node{start, start, start})
				cur = start
			}
		}
	}

	switch mode {
	case NodesAndHandles:
		pts := make([]Point, 0, 3*len(nodes))
		for _, nd := range nodes {
			pts = append(pts, nd.in, nd.pt, nd.out)
		}
		return pts, nil
	default:
		pts := make([]Point, len(nodes))
		for i, nd := range nodes {
			pts[i] = nd.pt
		}
		return pts, nil
	}
}
