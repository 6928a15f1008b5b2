package svgdoc

import (
	"testing"

	"github.com/shapeforge/findshape"
)

func TestParsePlaceMode(t *testing.T) {
	for s, want := range map[string]PlaceMode{
		"parent": PlaceParent,
		"group":  PlaceGroup,
		"layer":  PlaceLayer,
	} {
		got, err := ParsePlaceMode(s)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", s, got, err)
		}
	}
	if _, err := ParsePlaceMode("sibling"); err == nil {
		t.Error("unknown mode parsed without error")
	}
}

func TestCreateUse(t *testing.T) {
	doc := mustParse(t, sampleSVG)
	tpl := doc.ElementByID("tpl")
	aff := findshape.Translate(findshape.Vec(3, 4))

	el := CreateUse(doc.Root, tpl, aff, "tpl-2")
	if el.Parent != doc.Root {
		t.Error("use not appended to the requested parent")
	}
	diff(t, "#tpl", el.Href())
	diff(t, FormatTransform(aff), el.Attr("transform"))
	if doc.ElementByID("tpl-2") != el {
		t.Error("use not reachable by its id")
	}
}

func TestDuplicate(t *testing.T) {
	doc := mustParse(t, sampleSVG)
	tpl := doc.ElementByID("tpl")
	tpl.SetAttr("transform", "translate(1, 1)")
	aff := findshape.Rotate(1)

	el := Duplicate(doc.Root, tpl, aff, "dup")
	diff(t, tpl.Attr("d"), el.Attr("d"))
	// The copy's pose comes from the placement transform alone.
	diff(t, FormatTransform(aff), el.Attr("transform"))
	if el == tpl {
		t.Error("duplicate returned the original")
	}
	diff(t, "dup", el.ID())
}

func TestNewContainer(t *testing.T) {
	doc := mustParse(t, sampleSVG)

	g, err := doc.NewContainer(PlaceGroup, "matches")
	if err != nil {
		t.Fatal(err)
	}
	if g.Parent != doc.Root || g.Name.Local != "g" {
		t.Errorf("unexpected container %v", g.Name)
	}
	diff(t, "", g.AttrNS(inkscapeNS, "groupmode"))

	layer, err := doc.NewContainer(PlaceLayer, "match layer")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "layer", layer.AttrNS(inkscapeNS, "groupmode"))
	diff(t, "match layer", layer.AttrNS(inkscapeNS, "label"))

	if _, err := doc.NewContainer(PlaceParent, "x"); err == nil {
		t.Error("parent mode created a container")
	}
}
