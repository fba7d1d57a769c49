// Package imop implements the blend modes used when the progress indicator
// is mixed with a background image. The blending is applied on top of the
// Porter-Duff source-over composition, following the separable blend modes
// of the W3C compositing specification.
package imop

import (
	"fmt"

	"github.com/esimov/arcbar/utils"
)

// Mode is a separable blend mode.
type Mode string

const (
	Normal   Mode = "normal"
	Darken   Mode = "darken"
	Lighten  Mode = "lighten"
	Multiply Mode = "multiply"
	Screen   Mode = "screen"
	Overlay  Mode = "overlay"
)

var modes = []Mode{Normal, Darken, Lighten, Multiply, Screen, Overlay}

// ParseMode returns the blend mode with the given name.
// An empty name selects Normal.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return Normal, nil
	}
	for _, m := range modes {
		if string(m) == name {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unsupported blend mode: %q", name)
}

// blend mixes a normalized backdrop channel cb with a source channel cs.
func (m Mode) blend(cb, cs float64) float64 {
	switch m {
	case Darken:
		return utils.Min(cb, cs)
	case Lighten:
		return utils.Max(cb, cs)
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Overlay:
		// hard light with the layers swapped
		if cb <= 0.5 {
			return Multiply.blend(cs, 2*cb)
		}
		return Screen.blend(cs, 2*cb-1)
	default:
		return cs
	}
}
