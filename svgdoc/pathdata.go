package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapeforge/findshape"
)

// ParsePathData parses SVG path data into a path. All commands except arcs
// are supported; arc commands (A/a) produce an error, which the matcher
// treats as "this element cannot be compared".
func ParsePathData(d string) (findshape.BezPath, error) {
	s := pathScanner{src: d}
	var p findshape.BezPath
	var cur, start findshape.Point
	var cubicCtrl, quadCtrl findshape.Point
	var haveCubic, haveQuad bool
	var cmd byte

	for {
		s.skipSep()
		if s.eof() {
			break
		}
		if c := s.peek(); isPathCommand(c) {
			cmd = c
			s.advance()
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 0 {
			return nil, fmt.Errorf("path data does not begin with a command: %q", d)
		}

		rel := cmd >= 'a' && cmd <= 'z'
		point := func() (findshape.Point, error) {
			x, err := s.number()
			if err != nil {
				return findshape.Point{}, err
			}
			y, err := s.number()
			if err != nil {
				return findshape.Point{}, err
			}
			pt := findshape.Pt(x, y)
			if rel {
				pt = pt.Translate(findshape.Vec(cur.X, cur.Y))
			}
			return pt, nil
		}

		wasCubic, wasQuad := false, false
		switch cmd {
		case 'M', 'm':
			pt, err := point()
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt)
			start, cur = pt, pt
		case 'L', 'l':
			pt, err := point()
			if err != nil {
				return nil, err
			}
			p.LineTo(pt)
			cur = pt
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = findshape.Pt(x, cur.Y)
			p.LineTo(cur)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = findshape.Pt(cur.X, y)
			p.LineTo(cur)
		case 'C', 'c', 'S', 's':
			var p1 findshape.Point
			if cmd == 'C' || cmd == 'c' {
				var err error
				p1, err = point()
				if err != nil {
					return nil, err
				}
			} else if haveCubic {
				p1 = cur.Translate(cur.Sub(cubicCtrl))
			} else {
				p1 = cur
			}
			p2, err := point()
			if err != nil {
				return nil, err
			}
			p3, err := point()
			if err != nil {
				return nil, err
			}
			p.CubicTo(p1, p2, p3)
			cubicCtrl, cur = p2, p3
			wasCubic = true
		case 'Q', 'q', 'T', 't':
			var p1 findshape.Point
			if cmd == 'Q' || cmd == 'q' {
				var err error
				p1, err = point()
				if err != nil {
					return nil, err
				}
			} else if haveQuad {
				p1 = cur.Translate(cur.Sub(quadCtrl))
			} else {
				p1 = cur
			}
			p2, err := point()
			if err != nil {
				return nil, err
			}
			p.QuadTo(p1, p2)
			quadCtrl, cur = p1, p2
			wasQuad = true
		case 'Z', 'z':
			p.ClosePath()
			cur = start
		case 'A', 'a':
			return nil, fmt.Errorf("arc commands are not supported")
		default:
			return nil, fmt.Errorf("unknown path command %q", string(cmd))
		}
		haveCubic, haveQuad = wasCubic, wasQuad
	}
	return p, nil
}

// WritePathData converts a path to SVG path data using absolute commands.
func WritePathData(p findshape.BezPath) string {
	format := func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	sb := &strings.Builder{}
	first := true
	for el := range p.Elements() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		switch el.Kind {
		case findshape.MoveToKind:
			fmt.Fprintf(sb, "M%s,%s", format(el.P0.X), format(el.P0.Y))
		case findshape.LineToKind:
			fmt.Fprintf(sb, "L%s,%s", format(el.P0.X), format(el.P0.Y))
		case findshape.QuadToKind:
			fmt.Fprintf(sb, "Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case findshape.CubicToKind:
			fmt.Fprintf(sb, "C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case findshape.ClosePathKind:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *pathScanner) peek() byte {
	return s.src[s.pos]
}

func (s *pathScanner) advance() {
	s.pos++
}

func (s *pathScanner) skipSep() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.advance()
		default:
			return
		}
	}
}

// number scans one floating-point number, including exponents. A sign
// directly following a number starts the next one, as SVG allows "10-5".
func (s *pathScanner) number() (float64, error) {
	s.skipSep()
	begin := s.pos
	if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
		s.advance()
	}
	digits := func() {
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.advance()
		}
	}
	digits()
	if !s.eof() && s.peek() == '.' {
		s.advance()
		digits()
	}
	if !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		s.advance()
		if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			s.advance()
		}
		digits()
	}
	if s.pos == begin {
		return 0, fmt.Errorf("expected number at offset %d in path data", s.pos)
	}
	return strconv.ParseFloat(s.src[begin:s.pos], 64)
}
