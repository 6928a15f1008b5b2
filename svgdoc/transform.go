package svgdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shapeforge/findshape"
)

// ParseTransform parses an SVG transform attribute: a list of
// matrix/translate/scale/rotate/skewX/skewY operations, composed left to
// right as SVG specifies.
func ParseTransform(s string) (findshape.Affine, error) {
	aff := findshape.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return findshape.Identity, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumberList(rest[open+1 : closing])
		if err != nil {
			return findshape.Identity, fmt.Errorf("transform %s: %w", name, err)
		}
		op, err := transformOp(name, args)
		if err != nil {
			return findshape.Identity, err
		}
		aff = aff.Mul(op)
		rest = strings.TrimLeft(strings.TrimSpace(rest[closing+1:]), ",")
		rest = strings.TrimSpace(rest)
	}
	return aff, nil
}

func transformOp(name string, args []float64) (findshape.Affine, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return findshape.Identity, fmt.Errorf("matrix requires 6 arguments, got %d", len(args))
		}
		return findshape.Affine{N0: args[0], N1: args[1], N2: args[2], N3: args[3], N4: args[4], N5: args[5]}, nil
	case "translate":
		switch len(args) {
		case 1:
			return findshape.Translate(findshape.Vec(args[0], 0)), nil
		case 2:
			return findshape.Translate(findshape.Vec(args[0], args[1])), nil
		}
		return findshape.Identity, fmt.Errorf("translate requires 1 or 2 arguments, got %d", len(args))
	case "scale":
		switch len(args) {
		case 1:
			return findshape.UniformScale(args[0]), nil
		case 2:
			return findshape.Scale(args[0], args[1]), nil
		}
		return findshape.Identity, fmt.Errorf("scale requires 1 or 2 arguments, got %d", len(args))
	case "rotate":
		switch len(args) {
		case 1:
			return findshape.Rotate(args[0] * math.Pi / 180), nil
		case 3:
			c := findshape.Vec(args[1], args[2])
			rot := findshape.Rotate(args[0] * math.Pi / 180)
			return findshape.Translate(c).Mul(rot).Mul(findshape.Translate(c.Negate())), nil
		}
		return findshape.Identity, fmt.Errorf("rotate requires 1 or 3 arguments, got %d", len(args))
	case "skewX":
		if len(args) != 1 {
			return findshape.Identity, fmt.Errorf("skewX requires 1 argument, got %d", len(args))
		}
		return findshape.Affine{N0: 1, N3: 1, N2: math.Tan(args[0] * math.Pi / 180)}, nil
	case "skewY":
		if len(args) != 1 {
			return findshape.Identity, fmt.Errorf("skewY requires 1 argument, got %d", len(args))
		}
		return findshape.Affine{N0: 1, N3: 1, N1: math.Tan(args[0] * math.Pi / 180)}, nil
	default:
		return findshape.Identity, fmt.Errorf("unknown transform operation %q", name)
	}
}

func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatTransform renders a transform as a matrix() attribute value.
func FormatTransform(aff findshape.Affine) string {
	c := aff.Coefficients()
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "matrix(" + strings.Join(parts, ", ") + ")"
}
