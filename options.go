package findshape

import "fmt"

// ExtractMode selects which points of a contour take part in the
// comparison. The choice changes the point count and therefore which shapes
// are comparable at all.
type ExtractMode int

const (
	// NodesOnly compares only the on-curve node points.
	NodesOnly ExtractMode = iota
	// NodesAndHandles additionally compares the control-handle points of
	// each segment.
	NodesAndHandles
)

// ParseExtractMode parses the textual form of an extraction mode, "nodes"
// or "handles". Parsing happens once at the boundary; the rest of the
// engine only sees the enumerated value.
func ParseExtractMode(s string) (ExtractMode, error) {
	switch s {
	case "nodes":
		return NodesOnly, nil
	case "handles":
		return NodesAndHandles, nil
	default:
		return 0, fmt.Errorf("unknown extract mode %q", s)
	}
}

func (m ExtractMode) String() string {
	switch m {
	case NodesOnly:
		return "nodes"
	case NodesAndHandles:
		return "handles"
	default:
		return fmt.Sprintf("ExtractMode(%d)", int(m))
	}
}

// Options configures a matching run.
type Options struct {
	// Rotate and Flip allow rotated and mirrored matches. Only the
	// combination of both enabled (a single orthogonal solve) or both
	// disabled is implemented; see Validate.
	Rotate bool
	Flip   bool

	// Resize allows uniformly scaled matches.
	Resize bool

	// Rescale requests stroke-preserving rescaling. Not implemented;
	// requesting it fails validation.
	Rescale bool

	// Mode selects which contour points are compared.
	Mode ExtractMode

	// MeanTolerance bounds the root-mean-square error between the
	// co-normalized point sets, MaxTolerance the maximum absolute
	// per-coordinate error. Both bounds are inclusive and both must hold.
	MeanTolerance float64
	MaxTolerance  float64

	// Logf receives debug-granularity diagnostics. May be nil.
	Logf func(format string, args ...any)
}

// Validate checks the options against the table of supported combinations.
// It is called before any geometry work; an unsupported combination fails
// immediately rather than being silently approximated.
func (o Options) Validate() error {
	if o.Rescale {
		return &UnsupportedConfigurationError{Reason: "rescale matching is not implemented"}
	}
	if o.Rotate != o.Flip {
		return &UnsupportedConfigurationError{Reason: "rotation and flip can only be searched together"}
	}
	if o.MeanTolerance < 0 || o.MaxTolerance < 0 {
		return &UnsupportedConfigurationError{Reason: "tolerances must be non-negative"}
	}
	if o.Mode != NodesOnly && o.Mode != NodesAndHandles {
		return &UnsupportedConfigurationError{Reason: "unknown extract mode"}
	}
	return nil
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}
