package svgdoc

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/shapeforge/findshape"
)

// comparable element types: path-like primitives plus references to
// already-placed copies.
var comparableTags = map[string]bool{
	"path":    true,
	"rect":    true,
	"circle":  true,
	"ellipse": true,
	"use":     true,
}

// Source adapts a Document to the engine's capability interface.
type Source struct {
	doc *Document
}

var _ findshape.Source = (*Source)(nil)

// NewSource wraps a parsed document.
func NewSource(doc *Document) *Source {
	return &Source{doc: doc}
}

// Document returns the underlying document.
func (s *Source) Document() *Document {
	return s.doc
}

// Descendants yields every element of the document in traversal order.
func (s *Source) Descendants() iter.Seq[findshape.Object] {
	return func(yield func(findshape.Object) bool) {
		for el := range s.doc.Descendants() {
			if !yield(el) {
				return
			}
		}
	}
}

// IsComparable reports whether the element is a primitive the engine can
// compare: a path, rectangle, circle, ellipse, or use reference.
func (s *Source) IsComparable(obj findshape.Object) bool {
	el, ok := obj.(*Element)
	return ok && comparableTags[el.Name.Local]
}

// Contour returns the element's outline as a path in its local coordinate
// frame.
func (s *Source) Contour(obj findshape.Object) (findshape.BezPath, error) {
	el, ok := obj.(*Element)
	if !ok {
		return nil, fmt.Errorf("not an svg element")
	}
	return s.contour(el, 0)
}

func (s *Source) contour(el *Element, depth int) (findshape.BezPath, error) {
	switch el.Name.Local {
	case "path":
		return ParsePathData(el.Attr("d"))
	case "rect":
		x, err := attrFloat(el, "x")
		if err != nil {
			return nil, err
		}
		y, err := attrFloat(el, "y")
		if err != nil {
			return nil, err
		}
		w, err := attrFloat(el, "width")
		if err != nil {
			return nil, err
		}
		h, err := attrFloat(el, "height")
		if err != nil {
			return nil, err
		}
		// TODO: rounded corners (rx/ry) are flattened to sharp ones.
		return findshape.NewRectFromOrigin(findshape.Pt(x, y), w, h).Path(), nil
	case "circle":
		cx, err := attrFloat(el, "cx")
		if err != nil {
			return nil, err
		}
		cy, err := attrFloat(el, "cy")
		if err != nil {
			return nil, err
		}
		r, err := attrFloat(el, "r")
		if err != nil {
			return nil, err
		}
		return findshape.NewCircle(findshape.Pt(cx, cy), r).Path(), nil
	case "ellipse":
		cx, err := attrFloat(el, "cx")
		if err != nil {
			return nil, err
		}
		cy, err := attrFloat(el, "cy")
		if err != nil {
			return nil, err
		}
		rx, err := attrFloat(el, "rx")
		if err != nil {
			return nil, err
		}
		ry, err := attrFloat(el, "ry")
		if err != nil {
			return nil, err
		}
		return findshape.NewEllipse(findshape.Pt(cx, cy), findshape.Vec(rx, ry)).Path(), nil
	case "use":
		if depth >= 16 {
			return nil, fmt.Errorf("use reference chain too deep")
		}
		href := el.Href()
		id, ok := strings.CutPrefix(href, "#")
		if !ok {
			return nil, fmt.Errorf("unsupported use reference %q", href)
		}
		target := s.doc.ElementByID(id)
		if target == nil {
			return nil, fmt.Errorf("use references unknown element %q", id)
		}
		p, err := s.contour(target, depth+1)
		if err != nil {
			return nil, err
		}
		x, err := attrFloat(el, "x")
		if err != nil {
			return nil, err
		}
		y, err := attrFloat(el, "y")
		if err != nil {
			return nil, err
		}
		return p.Transform(findshape.Translate(findshape.Vec(x, y))), nil
	default:
		return nil, fmt.Errorf("element <%s> has no comparable outline", el.Name.Local)
	}
}

// ComposedTransform accumulates the transform attributes from the document
// root down to the element. Transform attributes that fail to parse are
// treated as identity.
func (s *Source) ComposedTransform(obj findshape.Object) findshape.Affine {
	el, ok := obj.(*Element)
	if !ok {
		return findshape.Identity
	}
	var chain []*Element
	for e := el; e != nil; e = e.Parent {
		chain = append(chain, e)
	}
	aff := findshape.Identity
	for i := len(chain) - 1; i >= 0; i-- {
		if t := chain[i].Attr("transform"); t != "" {
			if op, err := ParseTransform(t); err == nil {
				aff = aff.Mul(op)
			}
		}
	}
	return aff
}

func attrFloat(el *Element, name string) (float64, error) {
	v := strings.TrimSpace(el.Attr(name))
	if v == "" {
		return 0, nil
	}
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s attribute %q", name, el.Attr(name))
	}
	return f, nil
}
