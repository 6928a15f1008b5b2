// Package findshape locates shapes in a vector document that are congruent
// to a template shape, up to translation, rotation, reflection, and uniform
// scale, and computes the affine transform that places a copy of the
// template onto each match.
//
// # Matching model
//
// A shape is compared as an ordered sequence of 2D points extracted from its
// single contour ([ExtractPoints]). Point order is the sole correspondence
// between two shapes: point i of one is compared against point i of the
// other. The engine never searches over re-orderings; only the forward and
// the whole-sequence reversed orders are tried, which is enough to recognize
// outlines traced in the opposite winding direction.
//
// A candidate is normalized into the template's frame in up to three steps:
// centering on its centroid, uniform rescaling to the template's Frobenius
// norm, and an orthogonal Procrustes alignment whose solution is not
// constrained to proper rotations and therefore recovers reflections. Each
// step yields the inverse transform needed to undo it, and the composition
// of those inverses with the cached template frame maps the original,
// untransformed template geometry onto the candidate's pose in the
// document's global coordinate space.
//
// The document itself is abstracted behind [Source]; package svgdoc provides
// an implementation for SVG files.
package findshape
