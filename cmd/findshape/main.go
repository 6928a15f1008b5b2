// Command findshape searches an SVG document for shapes congruent to a
// template element and optionally replaces them with clones or duplicates
// of the template.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/shapeforge/findshape"
	"github.com/shapeforge/findshape/preview"
	"github.com/shapeforge/findshape/svgdoc"
)

func main() {
	var (
		templateID  = flag.String("template", "", "id of the template element (required)")
		rotate      = flag.Bool("rotate", true, "find rotated matches")
		flip        = flag.Bool("flip", true, "find mirrored matches")
		resize      = flag.Bool("resize", true, "find uniformly scaled matches")
		rescale     = flag.Bool("rescale", false, "stroke-preserving rescale (not implemented)")
		points      = flag.String("points", "nodes", "points to compare: nodes or handles")
		meanTol     = flag.Float64("mean-tol", 1e-6, "maximum root-mean-square error")
		maxTol      = flag.Float64("max-tol", 1e-6, "maximum per-coordinate error")
		replace     = flag.Bool("replace", false, "place a copy of the template on each match")
		del         = flag.Bool("delete", false, "delete matched elements")
		copyAs      = flag.String("copy-as", "clone", "copy type: clone (a <use> reference) or duplicate")
		place       = flag.String("place", "parent", "where copies go: parent, group, or layer")
		output      = flag.String("o", "", "output file (default stdout)")
		previewPath = flag.String("preview", "", "write a diagnostic PNG of outlines and matches")
		verbose     = flag.Bool("v", false, "log debug diagnostics to stderr")
	)
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "findshape: ", 0)
	}

	if flag.NArg() != 1 {
		fatalf("usage: findshape [flags] input.svg")
	}
	if *templateID == "" {
		fatalf("no template selected: pass -template with the id of the template element")
	}
	mode, err := findshape.ParseExtractMode(*points)
	if err != nil {
		fatalf("%v", err)
	}
	placeMode, err := svgdoc.ParsePlaceMode(*place)
	if err != nil {
		fatalf("%v", err)
	}
	if *copyAs != "clone" && *copyAs != "duplicate" {
		fatalf("unknown copy type %q", *copyAs)
	}

	doc, err := svgdoc.ParseFile(flag.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}
	template := doc.ElementByID(*templateID)
	if template == nil {
		fatalf("no element with id %q in %s", *templateID, flag.Arg(0))
	}

	opts := findshape.Options{
		Rotate:        *rotate,
		Flip:          *flip,
		Resize:        *resize,
		Rescale:       *rescale,
		Mode:          mode,
		MeanTolerance: *meanTol,
		MaxTolerance:  *maxTol,
		Logf:          logger.Printf,
	}
	src := svgdoc.NewSource(doc)
	matches, err := findshape.FindMatches(src, template, opts)
	if err != nil {
		fatalf("%v", err)
	}
	for _, m := range matches {
		fmt.Fprintf(os.Stderr, "match: %s\n", m.Object.ID())
	}

	if *previewPath != "" {
		if err := writePreview(*previewPath, src, template, matches); err != nil {
			fatalf("writing preview: %v", err)
		}
	}

	if *replace || *del {
		apply(doc, src, template, matches, placeMode, *copyAs == "clone", *replace, *del)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := doc.WriteTo(out); err != nil {
		fatalf("writing document: %v", err)
	}
}

// apply places copies of the template onto the matches and deletes the
// matched elements, per the replace and delete flags.
func apply(doc *svgdoc.Document, src *svgdoc.Source, template *svgdoc.Element, matches []findshape.Match, placeMode svgdoc.PlaceMode, clone, replace, del bool) {
	// A <use> re-applies the template's own transform attribute on top of
	// the one we set, so cancel it out of the match transform.
	undoOwn := findshape.Identity
	if clone {
		if t := template.Attr("transform"); t != "" {
			if own, err := svgdoc.ParseTransform(t); err == nil {
				undoOwn = own.Invert()
			}
		}
	}

	var container *svgdoc.Element
	for _, m := range matches {
		el := m.Object.(*svgdoc.Element)
		if replace {
			parent := el.Parent
			if placeMode != svgdoc.PlaceParent {
				if container == nil {
					container, _ = doc.NewContainer(placeMode, doc.UniqueID(template.ID()+"-copies"))
				}
				parent = container
			}
			// The match transform is in the global frame; compensate for
			// the transforms the new parent contributes.
			aff := src.ComposedTransform(parent).Invert().Mul(m.Transform)
			if clone {
				svgdoc.CreateUse(parent, template, aff.Mul(undoOwn), doc.UniqueID(template.ID()+"-clone"))
			} else {
				svgdoc.Duplicate(parent, template, aff, doc.UniqueID(template.ID()+"-duplicate"))
			}
		}
		if del {
			el.Remove()
		}
	}
}

// writePreview renders all comparable outlines in gray, the template in
// blue, and the matched template poses in red.
func writePreview(path string, src *svgdoc.Source, template *svgdoc.Element, matches []findshape.Match) error {
	tplContour, err := src.Contour(template)
	if err != nil {
		return err
	}
	var outlines []preview.Outline
	for obj := range src.Descendants() {
		if !src.IsComparable(obj) || obj == findshape.Object(template) {
			continue
		}
		contour, err := src.Contour(obj)
		if err != nil {
			continue
		}
		outlines = append(outlines, preview.Outline{
			Path:  contour.Transform(src.ComposedTransform(obj)),
			Color: color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
		})
	}
	outlines = append(outlines, preview.Outline{
		Path:  tplContour.Transform(src.ComposedTransform(template)),
		Color: color.RGBA{0x20, 0x60, 0xc0, 0xff},
	})
	for _, m := range matches {
		outlines = append(outlines, preview.Outline{
			Path:  tplContour.Transform(m.Transform),
			Color: color.RGBA{0xc0, 0x30, 0x30, 0x80},
		})
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, outlines, preview.Options{}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "findshape: "+format+"\n", args...)
	os.Exit(1)
}
