package findshape

import "iter"

// Object is an element of the host document. The engine only needs a
// stable identifier for diagnostics; everything else it learns through
// [Source].
type Object interface {
	ID() string
}

// Source provides the document capabilities the engine consumes: traversal,
// the comparable-element filter, contour extraction, and the composed
// rendering transform accumulated from the document root to an element.
// Package svgdoc implements it for SVG files.
type Source interface {
	// Descendants yields every element of the document in traversal order.
	Descendants() iter.Seq[Object]

	// IsComparable reports whether the element is a path-like primitive the
	// engine can compare.
	IsComparable(obj Object) bool

	// Contour returns the element's outline as a path. It fails for
	// elements whose outline cannot be determined.
	Contour(obj Object) (BezPath, error)

	// ComposedTransform returns the accumulated ancestor transform mapping
	// the element's local coordinates to the document's global frame.
	ComposedTransform(obj Object) Affine
}

// Match pairs a matched candidate with the transform that, applied to the
// original untransformed template geometry, reproduces the candidate's pose
// in the document's global frame.
type Match struct {
	Object    Object
	Transform Affine
}

// Matcher compares candidate shapes against a fixed template. The template
// is normalized once at construction and shared read-only between
// comparisons; candidates carry no state across comparisons.
type Matcher struct {
	template Shape
	frame    Affine // template centering ∘ template render transform
	opts     Options
}

// NewMatcher builds a matcher for the given template shape and the
// rendering transform it was extracted with. It validates the options
// before any geometry work and centers the template once, caching the
// transform chain that moves the original template to its centered pose.
func NewMatcher(template Shape, render Affine, opts Options) (*Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	centered, centering := template.Center(false)
	return &Matcher{
		template: centered,
		frame:    centering.Mul(render),
		opts:     opts,
	}, nil
}

// Match runs the per-candidate pipeline and returns the template-to-
// candidate transform on success. On rejection the returned error names the
// reason; all rejection reasons are local to the candidate.
//
// If the candidate's natural point order is rejected, the whole pipeline is
// retried once with the order reversed. That recognizes outlines traced in
// the opposite winding direction, a common effect of an upstream flip. Only
// those two orders are ever tried: a contour whose traversal merely starts
// at a different vertex is not matched.
func (m *Matcher) Match(cand Shape) (Affine, error) {
	aff, err := m.matchOrder(cand)
	if err == nil {
		return aff, nil
	}
	m.opts.logf("retrying with reversed point order: %v", err)
	if aff, err2 := m.matchOrder(cand.Reversed()); err2 == nil {
		return aff, nil
	}
	return Affine{}, err
}

func (m *Matcher) matchOrder(cand Shape) (Affine, error) {
	if cand.Len() != m.template.Len() {
		return Affine{}, &PointCountMismatchError{Got: cand.Len(), Want: m.template.Len()}
	}

	// We want the template → candidate transform, so collect the inverses.
	// Transforms apply right to left.
	cand, chain := cand.Center(true)

	if m.opts.Resize {
		// The candidate's points scale towards the template; the template
		// scales towards the candidate before its centering is undone.
		var scale Affine
		var err error
		cand, scale, err = cand.RescaleTo(m.template, true)
		if err != nil {
			return Affine{}, err
		}
		chain = chain.Mul(scale)
	}

	if m.opts.Rotate && m.opts.Flip {
		var rot Affine
		var err error
		cand, rot, err = cand.AlignTo(m.template, true)
		if err != nil {
			return Affine{}, err
		}
		chain = chain.Mul(rot)
	}

	meanErr, maxErr := cand.Similarity(m.template)
	m.opts.logf("mean err %g, max err %g", meanErr, maxErr)
	if meanErr > m.opts.MeanTolerance || maxErr > m.opts.MaxTolerance {
		return Affine{}, ErrToleranceExceeded
	}

	// Read right to left: template → rendered template → centered template
	// → aligned onto the candidate → candidate's centering undone.
	return chain.Mul(m.frame), nil
}

// FindMatches scans the document for shapes congruent to the template and
// returns them in traversal order. Per-candidate failures (multiple
// contours, point-count mismatches, degenerate geometry, residual error)
// are logged and skipped; only a failure while establishing the template or
// validating the options aborts the run.
func FindMatches(src Source, template Object, opts Options) ([]Match, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNoTemplate
	}
	if !src.IsComparable(template) {
		return nil, &InvalidTemplateError{ID: template.ID(), Err: errNotComparable}
	}
	contour, err := src.Contour(template)
	if err != nil {
		return nil, &InvalidTemplateError{ID: template.ID(), Err: err}
	}
	render := src.ComposedTransform(template)
	tpl, err := NewShape(contour, render, opts.Mode)
	if err != nil {
		return nil, &InvalidTemplateError{ID: template.ID(), Err: err}
	}
	m, err := NewMatcher(tpl, render, opts)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for obj := range src.Descendants() {
		if obj == template || !src.IsComparable(obj) {
			continue
		}
		opts.logf("comparing %s", obj.ID())
		contour, err := src.Contour(obj)
		if err != nil {
			opts.logf("could not get contour of %s: %v", obj.ID(), err)
			continue
		}
		cand, err := NewShape(contour, src.ComposedTransform(obj), opts.Mode)
		if err != nil {
			opts.logf("could not build shape for %s: %v", obj.ID(), err)
			continue
		}
		aff, err := m.Match(cand)
		if err != nil {
			opts.logf("%s rejected: %v", obj.ID(), err)
			continue
		}
		opts.logf("found match %s: %v", obj.ID(), aff.Coefficients())
		matches = append(matches, Match{Object: obj, Transform: aff})
	}
	return matches, nil
}
