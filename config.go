package arcbar

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/esimov/arcbar/utils"
)

// Shape selects the layout used to draw the progress indicator.
type Shape int

const (
	// Circular is a full 360° ring starting at 12 o'clock and going clockwise.
	Circular Shape = iota
	// Arch is a 180° half ring going from 9 o'clock to 3 o'clock over the top.
	Arch
	// Flat is a horizontal bar with rounded ends.
	Flat
)

func (s Shape) String() string {
	switch s {
	case Circular:
		return "circular"
	case Arch:
		return "arch"
	case Flat:
		return "flat"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circular", "circle", "ring":
		return Circular, nil
	case "arch", "arc":
		return Arch, nil
	case "flat", "bar":
		return Flat, nil
	}
	return Circular, fmt.Errorf("unsupported shape type: %q", name)
}

// EdgeShape is the cap applied to the open ends of a stroked arc.
type EdgeShape int

const (
	Butt EdgeShape = iota
	Round
)

func (e EdgeShape) String() string {
	switch e {
	case Butt:
		return "butt"
	case Round:
		return "round"
	}
	return fmt.Sprintf("EdgeShape(%d)", int(e))
}

// ParseEdgeShape converts an edge name into an EdgeShape.
func ParseEdgeShape(name string) (EdgeShape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butt", "flat":
		return Butt, nil
	case "round", "rounded":
		return Round, nil
	}
	return Butt, fmt.Errorf("unsupported edge shape: %q", name)
}

// Config holds the options of a single progress indicator draw.
// A Config is read fresh on every render; nothing is carried between draws.
type Config struct {
	Progress          int
	MaxProgress       int
	Size              int // diameter for Circular and Arch, width for Flat
	Thickness         int
	ProgressColor     color.Color
	ProgressLeftColor color.Color
	TextColor         color.Color
	ShowText          bool
	EdgeShape         EdgeShape
	Shape             Shape
}

var (
	defaultProgressColor     = color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	defaultProgressLeftColor = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	defaultTextColor         = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// DefaultConfig returns a 100px circular indicator at 0/100.
func DefaultConfig() Config {
	return Config{
		Progress:          0,
		MaxProgress:       100,
		Size:              100,
		Thickness:         10,
		ProgressColor:     defaultProgressColor,
		ProgressLeftColor: defaultProgressLeftColor,
		TextColor:         defaultTextColor,
		ShowText:          true,
		EdgeShape:         Butt,
		Shape:             Circular,
	}
}

// ClampedProgress returns the progress value clamped to [0, MaxProgress].
// With a non-positive MaxProgress the result is always 0.
func (c Config) ClampedProgress() int {
	if c.MaxProgress <= 0 {
		return 0
	}
	return utils.Clamp(c.Progress, 0, c.MaxProgress)
}

// Percentage returns the completed fraction in the [0, 100] range.
func (c Config) Percentage() float64 {
	if c.MaxProgress <= 0 {
		return 0
	}
	return float64(c.ClampedProgress()) / float64(c.MaxProgress) * 100
}

// Label is the text drawn inside or next to the indicator.
func (c Config) Label() string {
	return fmt.Sprintf("%d/%d", c.ClampedProgress(), c.MaxProgress)
}

// effectiveSize is the diameter traced by the stroke centerline.
func (c Config) effectiveSize() float64 {
	return utils.Max(float64(c.Size-c.Thickness), 0)
}

func (c Config) thickness() float64 {
	return utils.Max(float64(c.Thickness), 0)
}

// colors falls back to the defaults for any unset color.
func (c Config) colors() (progress, left, text color.Color) {
	progress, left, text = c.ProgressColor, c.ProgressLeftColor, c.TextColor
	if progress == nil {
		progress = defaultProgressColor
	}
	if left == nil {
		left = defaultProgressLeftColor
	}
	if text == nil {
		text = defaultTextColor
	}
	return
}
