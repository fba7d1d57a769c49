package arcbar

import "image/color"

// frame holds the values derived from a Config for a single draw.
type frame struct {
	cfg   Config
	pct   float64
	label string

	progress, left, text color.Color
}

func newFrame(cfg Config) frame {
	f := frame{
		cfg:   cfg,
		pct:   cfg.Percentage(),
		label: cfg.Label(),
	}
	f.progress, f.left, f.text = cfg.colors()
	return f
}

// stroke sets up the surface for an arc or ellipse in the given color.
func (f frame) stroke(s Surface, c color.Color) {
	s.SetStrokeColor(c)
	s.SetStrokeWidth(f.cfg.thickness())
	s.SetLineCap(f.cfg.EdgeShape)
}

func (f frame) font(s Surface, size float64) {
	s.SetFontSize(size)
	s.SetFontColor(f.text)
}

// drawer renders one shape variant.
type drawer interface {
	draw(f frame, s Surface)
}

type (
	circular struct{}
	arch     struct{}
	flat     struct{}
)

var drawers = map[Shape]drawer{
	Circular: circular{},
	Arch:     arch{},
	Flat:     flat{},
}

// Render draws the progress indicator described by cfg onto s.
// It never fails: out of range values are clamped and degenerate
// sizes produce an empty or background only drawing.
func Render(cfg Config, s Surface) {
	d, ok := drawers[cfg.Shape]
	if !ok {
		d = circular{}
	}
	d.draw(newFrame(cfg), s)
}

func (circular) draw(f frame, s Surface) {
	var (
		eff = f.cfg.effectiveSize()
		off = f.cfg.thickness() / 2
		box = Rect{X: off, Y: off, W: eff, H: eff}
	)

	if f.pct < 100 {
		f.stroke(s, f.left)
		s.DrawEllipse(box)

		if f.pct > 0 {
			f.stroke(s, f.progress)
			s.DrawArc(box, circularStart, circularAngle(f.pct), true, false)
		}
	} else {
		// A full circle avoids the seam an arc leaves at 360°.
		f.stroke(s, f.progress)
		s.DrawEllipse(box)
	}

	if f.cfg.ShowText {
		fs := eff / 2.86
		f.font(s, fs)

		y := (float64(f.cfg.Size)/2 - fs/2) * 1.15
		s.DrawText(f.label, Rect{X: off, Y: y, W: eff, H: eff / 4}, AlignCenter, AlignMiddle)
	}
}

func (arch) draw(f frame, s Surface) {
	var (
		eff = f.cfg.effectiveSize()
		off = f.cfg.thickness() / 2
		box = Rect{X: off, Y: off, W: eff, H: eff}
	)

	f.stroke(s, f.left)
	s.DrawArc(box, archStart, archStart-archSweep, true, false)

	if f.pct > 0 {
		f.stroke(s, f.progress)
		s.DrawArc(box, archStart, archAngle(f.pct), true, false)
	}

	if f.cfg.ShowText {
		size := float64(f.cfg.Size)
		fs := size / 8
		f.font(s, fs)

		y := size - f.cfg.thickness() - fs*1.5
		s.DrawText(f.label, Rect{X: 0, Y: y, W: size, H: fs * 2}, AlignCenter, AlignMiddle)
	}
}

func (flat) draw(f frame, s Surface) {
	var (
		width  = float64(f.cfg.Size)
		height = f.cfg.thickness()
		y      = (width - height) / 2
		radius = height / 2
	)

	s.SetFillColor(f.left)
	s.FillRoundedRect(Rect{X: 0, Y: y, W: width, H: height}, radius)

	// Both ends of the overlay are rounded, the trailing one included.
	if f.pct > 0 {
		s.SetFillColor(f.progress)
		s.FillRoundedRect(Rect{X: 0, Y: y, W: width * f.pct / 100, H: height}, radius)
	}

	if f.cfg.ShowText {
		fs := height * 0.8
		f.font(s, fs)
		s.DrawText(f.label, Rect{X: 0, Y: y - fs - 5, W: width, H: fs}, AlignCenter, AlignTop)
	}
}
