package arcbar

import (
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	defaultFrameDelay = 20 * time.Millisecond
)

var previewBkgColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ShowPreview spawns a new Gio window looping the progress animation
// from 0 to MaxProgress. It returns when the window is closed.
// As with any Gio program, app.Main must be running on the main goroutine.
func (p *Processor) ShowPreview() error {
	width, height := p.previewSize()

	w := new(app.Window)
	w.Option(
		app.Title("arcbar preview"),
		app.Size(unit.Dp(width), unit.Dp(height)),
	)
	return p.run(w)
}

// previewSize returns the window size, fitting the indicator inside the screen.
func (p *Processor) previewSize() (float32, float32) {
	w, h := float32(p.Size), float32(p.Size)
	if p.bg != nil {
		b := p.bg.Bounds()
		w, h = float32(b.Dx()), float32(b.Dy())
	}

	// Retain the aspect ratio in case the preview is bigger than the predefined window.
	if w > maxScreenX || h > maxScreenY {
		r := min(maxScreenX/w, maxScreenY/h)
		w, h = w*r, h*r
	}
	return max(w, 1), max(h, 1)
}

// run the Gio event loop until a DestroyEvent or an ESC key event is captured.
func (p *Processor) run(w *app.Window) error {
	var (
		ops    op.Ops
		steps  = p.Steps()
		frames = make(map[int]paint.ImageOp, len(steps))
		start  = time.Now()
	)

	delay := defaultFrameDelay
	if p.Delay > 0 {
		delay = time.Duration(p.Delay) * 10 * time.Millisecond
	}

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					w.Perform(system.ActionClose)
				}
			}

			idx := int(gtx.Now.Sub(start)/delay) % len(steps)
			src, ok := frames[idx]
			if !ok {
				img, err := p.Frame(steps[idx])
				if err != nil {
					return err
				}
				src = paint.NewImageOp(img)
				frames[idx] = src
			}

			paint.Fill(gtx.Ops, previewBkgColor)
			layout.Center.Layout(gtx, func(gtx C) D {
				return widget.Image{
					Src: src,
					Fit: widget.Contain,
				}.Layout(gtx)
			})

			gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(delay)})
			e.Frame(gtx.Ops)
		}
	}
}
