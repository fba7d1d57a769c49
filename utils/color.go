package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format (#rgb, #rrggbb
// or #rrggbbaa, the leading hash being optional) to an RGBA value.
func HexToRGBA(x string) (color.NRGBA, error) {
	var r, g, b uint8
	a := uint8(0xff)

	hex := strings.TrimPrefix(strings.TrimSpace(x), "#")
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
		r, g, b = r*0x11, g*0x11, b*0x11
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", x, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", x)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
