package svgdoc

import (
	"encoding/xml"
	"fmt"

	"github.com/shapeforge/findshape"
)

// PlaceMode selects where copies of the template are placed.
type PlaceMode int

const (
	// PlaceParent puts each copy next to the match it replaces.
	PlaceParent PlaceMode = iota
	// PlaceGroup collects all copies in a new group under the root.
	PlaceGroup
	// PlaceLayer collects all copies in a new layer.
	PlaceLayer
)

// ParsePlaceMode parses the textual form of a placement mode.
func ParsePlaceMode(s string) (PlaceMode, error) {
	switch s {
	case "parent":
		return PlaceParent, nil
	case "group":
		return PlaceGroup, nil
	case "layer":
		return PlaceLayer, nil
	default:
		return 0, fmt.Errorf("unknown placement mode %q", s)
	}
}

// CreateUse appends a <use> reference to the template under parent, posed
// by the given transform.
func CreateUse(parent, template *Element, aff findshape.Affine, id string) *Element {
	el := &Element{Name: xml.Name{Space: svgNS, Local: "use"}}
	el.SetAttr("id", id)
	el.SetAttrNS(xlinkNS, "href", "#"+template.ID())
	el.SetAttr("transform", FormatTransform(aff))
	parent.Append(el)
	return el
}

// Duplicate appends a deep copy of the template under parent, posed by the
// given transform. Any transform the template carried itself is replaced;
// the given transform already accounts for the template's rendered pose.
func Duplicate(parent, template *Element, aff findshape.Affine, id string) *Element {
	el := template.Clone()
	el.SetAttr("id", id)
	el.SetAttr("transform", FormatTransform(aff))
	parent.Append(el)
	return el
}

// NewContainer creates the container that collects copies in the group and
// layer placement modes and appends it to the document root.
func (d *Document) NewContainer(mode PlaceMode, id string) (*Element, error) {
	el := &Element{Name: xml.Name{Space: svgNS, Local: "g"}}
	el.SetAttr("id", id)
	switch mode {
	case PlaceGroup:
	case PlaceLayer:
		el.SetAttrNS(inkscapeNS, "groupmode", "layer")
		el.SetAttrNS(inkscapeNS, "label", id)
	default:
		return nil, fmt.Errorf("placement mode %d does not use a container", mode)
	}
	d.Root.Append(el)
	return el, nil
}
