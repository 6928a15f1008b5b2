// Package svgdoc adapts SVG documents to the findshape engine.
//
// It parses an SVG file into a lightweight element tree, implements the
// engine's [github.com/shapeforge/findshape.Source] capability interface on
// top of it (traversal, comparable-element filtering, contour extraction,
// composed transforms), and provides the placement operations needed to
// replace matches with clones or duplicates of the template.
//
// The tree preserves attributes it does not understand, so a document can
// be parsed, modified, and written back without losing styling or metadata.
package svgdoc
