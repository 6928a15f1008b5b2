// Package preview renders shape outlines to raster images for diagnostics.
//
// It exists so a matching run can be inspected visually: the document's
// candidate outlines, the template, and the accepted matches are filled in
// distinct colors. It plays no part in matching itself.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/shapeforge/findshape"
)

// Outline is one filled path in the rendered image, in document
// coordinates.
type Outline struct {
	Path  findshape.BezPath
	Color color.RGBA
}

// Options configures rendering.
type Options struct {
	// Width and Height are the output size in pixels. Both default to 512.
	Width, Height int

	// Margin is the padding around the outlines' bounding box, as a
	// fraction of its size. Defaults to 0.05.
	Margin float64

	// Background fills the image before drawing. Defaults to white.
	Background color.RGBA
}

// curveSteps is the fixed number of line segments each Bézier segment is
// flattened to. Previews are for eyeballing, not measuring.
const curveSteps = 16

// Render draws the outlines, scaled uniformly to fit the output size.
func Render(outlines []Outline, opts Options) (*image.RGBA, error) {
	if len(outlines) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	if opts.Width <= 0 {
		opts.Width = 512
	}
	if opts.Height <= 0 {
		opts.Height = 512
	}
	if opts.Margin == 0 {
		opts.Margin = 0.05
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}

	flat := make([][][]findshape.Point, len(outlines))
	bounds, any := findshape.Rect{}, false
	for i, o := range outlines {
		flat[i] = flatten(o.Path)
		for _, contour := range flat[i] {
			for _, pt := range contour {
				if !any {
					bounds = findshape.NewRectFromPoints(pt, pt)
					any = true
				} else {
					bounds = bounds.UnionPoint(pt)
				}
			}
		}
	}
	if !any {
		return nil, fmt.Errorf("outlines contain no points")
	}

	fit := fitTransform(bounds, opts)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for i, o := range outlines {
		ras := vector.NewRasterizer(opts.Width, opts.Height)
		for _, contour := range flat[i] {
			for j, pt := range contour {
				pt = pt.Transform(fit)
				if j == 0 {
					ras.MoveTo(float32(pt.X), float32(pt.Y))
				} else {
					ras.LineTo(float32(pt.X), float32(pt.Y))
				}
			}
			ras.ClosePath()
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(o.Color), image.Point{})
	}
	return img, nil
}

// WritePNG renders the outlines and writes the result as PNG.
func WritePNG(w io.Writer, outlines []Outline, opts Options) error {
	img, err := Render(outlines, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// fitTransform maps the bounding box into the image with a uniform scale.
func fitTransform(bounds findshape.Rect, opts Options) findshape.Affine {
	w := bounds.MaxX() - bounds.MinX()
	h := bounds.MaxY() - bounds.MinY()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	m := opts.Margin
	scale := min(float64(opts.Width)/(w*(1+2*m)), float64(opts.Height)/(h*(1+2*m)))
	offX := (float64(opts.Width) - w*scale) / 2
	offY := (float64(opts.Height) - h*scale) / 2
	return findshape.Translate(findshape.Vec(offX, offY)).
		Mul(findshape.UniformScale(scale)).
		Mul(findshape.Translate(findshape.Vec(-bounds.MinX(), -bounds.MinY())))
}

// flatten converts a path to polylines, one per subpath.
func flatten(p findshape.BezPath) [][]findshape.Point {
	var contours [][]findshape.Point
	var cur []findshape.Point
	var pos findshape.Point
	push := func(pt findshape.Point) {
		cur = append(cur, pt)
		pos = pt
	}
	for el := range p.Elements() {
		switch el.Kind {
		case findshape.MoveToKind:
			if len(cur) > 0 {
				contours = append(contours, cur)
			}
			cur = nil
			push(el.P0)
		case findshape.LineToKind:
			push(el.P0)
		case findshape.QuadToKind:
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				a := pos.Lerp(el.P0, t)
				b := el.P0.Lerp(el.P1, t)
				cur = append(cur, a.Lerp(b, t))
			}
			pos = el.P1
		case findshape.CubicToKind:
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				a := pos.Lerp(el.P0, t)
				b := el.P0.Lerp(el.P1, t)
				c := el.P1.Lerp(el.P2, t)
				ab := a.Lerp(b, t)
				bc := b.Lerp(c, t)
				cur = append(cur, ab.Lerp(bc, t))
			}
			pos = el.P2
		case findshape.ClosePathKind:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
				pos = cur[0]
			}
		}
	}
	if len(cur) > 0 {
		contours = append(contours, cur)
	}
	return contours
}
