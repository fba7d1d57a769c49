package arcbar

import "image/color"

// Rect is an axis aligned box in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// HAlign is the horizontal text alignment inside a Rect.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical text alignment inside a Rect.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Surface is the immediate mode drawing capability supplied by the host.
// The setters change the state used by the following draw calls.
//
// DrawArc traces the part of the ellipse inscribed in r going from start to
// end (in degrees, counter-clockwise from 3 o'clock), in the direction given
// by clockwise.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetStrokeWidth(w float64)
	SetLineCap(e EdgeShape)
	SetFillColor(c color.Color)
	SetFontColor(c color.Color)
	SetFontSize(size float64)

	DrawEllipse(r Rect)
	DrawArc(r Rect, start, end float64, clockwise, closed bool)
	FillRoundedRect(r Rect, radius float64)
	DrawText(text string, r Rect, h HAlign, v VAlign)
}
