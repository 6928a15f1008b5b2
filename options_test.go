package findshape

import (
	"errors"
	"testing"
)

func TestParseExtractMode(t *testing.T) {
	if m, err := ParseExtractMode("nodes"); err != nil || m != NodesOnly {
		t.Errorf("got %v, %v", m, err)
	}
	if m, err := ParseExtractMode("handles"); err != nil || m != NodesAndHandles {
		t.Errorf("got %v, %v", m, err)
	}
	if _, err := ParseExtractMode("everything"); err == nil {
		t.Error("unknown mode parsed without error")
	}
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"defaults", Options{}, true},
		{"rotate and flip", Options{Rotate: true, Flip: true}, true},
		{"rotate only", Options{Rotate: true}, false},
		{"flip only", Options{Flip: true}, false},
		{"rescale", Options{Rescale: true}, false},
		{"resize", Options{Resize: true}, true},
		{"negative tolerance", Options{MeanTolerance: -1}, false},
		{"handle mode", Options{Mode: NodesAndHandles}, true},
		{"bogus mode", Options{Mode: ExtractMode(7)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.opts.Validate()
			if c.ok && err != nil {
				t.Errorf("got %v, want nil", err)
			}
			if !c.ok {
				var uce *UnsupportedConfigurationError
				if !errors.As(err, &uce) {
					t.Errorf("got %v, want UnsupportedConfigurationError", err)
				}
			}
		})
	}
}
