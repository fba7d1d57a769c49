package arcbar

import (
	"fmt"
	"image/color"
	"io"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpEllipse OpKind = iota
	OpArc
	OpRoundedRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpEllipse:
		return "ellipse"
	case OpArc:
		return "arc"
	case OpRoundedRect:
		return "rounded-rect"
	case OpText:
		return "text"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// DrawOp is a single draw call together with the surface state it used.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect
	Color color.Color // stroke, fill or font color depending on Kind
	Width float64     // stroke width
	Cap   EdgeShape

	// arc only
	Start, End        float64
	Clockwise, Closed bool

	// rounded rect only
	Radius float64

	// text only
	Text     string
	FontSize float64
	HAlign   HAlign
	VAlign   VAlign
}

// Recorder is a Surface which stores the draw calls instead of rasterizing them.
type Recorder struct {
	Ops []DrawOp

	stroke, fill, font color.Color
	width, fontSize    float64
	cap                EdgeShape
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Recorder) SetStrokeWidth(w float64)     { r.width = w }
func (r *Recorder) SetLineCap(e EdgeShape)       { r.cap = e }
func (r *Recorder) SetFillColor(c color.Color)   { r.fill = c }
func (r *Recorder) SetFontColor(c color.Color)   { r.font = c }
func (r *Recorder) SetFontSize(size float64)     { r.fontSize = size }

func (r *Recorder) DrawEllipse(rect Rect) {
	r.Ops = append(r.Ops, DrawOp{
		Kind:  OpEllipse,
		Rect:  rect,
		Color: r.stroke,
		Width: r.width,
		Cap:   r.cap,
	})
}

func (r *Recorder) DrawArc(rect Rect, start, end float64, clockwise, closed bool) {
	r.Ops = append(r.Ops, DrawOp{
		Kind:      OpArc,
		Rect:      rect,
		Color:     r.stroke,
		Width:     r.width,
		Cap:       r.cap,
		Start:     start,
		End:       end,
		Clockwise: clockwise,
		Closed:    closed,
	})
}

func (r *Recorder) FillRoundedRect(rect Rect, radius float64) {
	r.Ops = append(r.Ops, DrawOp{
		Kind:   OpRoundedRect,
		Rect:   rect,
		Color:  r.fill,
		Radius: radius,
	})
}

func (r *Recorder) DrawText(text string, rect Rect, h HAlign, v VAlign) {
	r.Ops = append(r.Ops, DrawOp{
		Kind:     OpText,
		Rect:     rect,
		Color:    r.font,
		Text:     text,
		FontSize: r.fontSize,
		HAlign:   h,
		VAlign:   v,
	})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []DrawOp {
	var ops []DrawOp
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Reset drops all the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// WriteTo prints the recorded ops in a human readable form.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, op := range r.Ops {
		var (
			n   int
			err error
		)
		rc := op.Rect
		switch op.Kind {
		case OpArc:
			n, err = fmt.Fprintf(w, "%2d %-12s x=%.2f y=%.2f w=%.2f h=%.2f start=%.2f end=%.2f cw=%t color=%s width=%.2f cap=%s\n",
				i, op.Kind, rc.X, rc.Y, rc.W, rc.H, op.Start, op.End, op.Clockwise, hexColor(op.Color), op.Width, op.Cap)
		case OpEllipse:
			n, err = fmt.Fprintf(w, "%2d %-12s x=%.2f y=%.2f w=%.2f h=%.2f color=%s width=%.2f\n",
				i, op.Kind, rc.X, rc.Y, rc.W, rc.H, hexColor(op.Color), op.Width)
		case OpRoundedRect:
			n, err = fmt.Fprintf(w, "%2d %-12s x=%.2f y=%.2f w=%.2f h=%.2f radius=%.2f color=%s\n",
				i, op.Kind, rc.X, rc.Y, rc.W, rc.H, op.Radius, hexColor(op.Color))
		case OpText:
			n, err = fmt.Fprintf(w, "%2d %-12s %q x=%.2f y=%.2f w=%.2f h=%.2f size=%.2f color=%s\n",
				i, op.Kind, op.Text, rc.X, rc.Y, rc.W, rc.H, op.FontSize, hexColor(op.Color))
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func hexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
