package arcbar

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/esimov/arcbar/utils"
)

// Canvas is a Surface backed by a software rasterized gg context.
//
// Surface methods do not return errors, so the first failing stroke or fill
// is recorded and reported by Err.
type Canvas struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face

	stroke, fill, fontColor color.Color
	strokeWidth, fontSize   float64
	cap                     EdgeShape

	err error
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given dimension
// using the Go regular font for labels.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %dx%d", width, height)
	}
	return newCanvas(gg.NewContext(width, height))
}

// NewCanvasForImage creates a canvas drawing on top of a copy of img.
func NewCanvasForImage(img image.Image) (*Canvas, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("invalid canvas size: %v", img.Bounds())
	}
	return newCanvas(gg.NewContextForImage(imaging.Clone(img)))
}

func newCanvas(dc *gg.Context) (*Canvas, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to load the label font: %w", err)
	}
	return &Canvas{
		dc:        dc,
		font:      src,
		faces:     make(map[float64]text.Face),
		stroke:    color.Black,
		fill:      color.Black,
		fontColor: color.Black,
	}, nil
}

func (c *Canvas) SetStrokeColor(col color.Color) { c.stroke = col }
func (c *Canvas) SetStrokeWidth(w float64)       { c.strokeWidth = w }
func (c *Canvas) SetLineCap(e EdgeShape)         { c.cap = e }
func (c *Canvas) SetFillColor(col color.Color)   { c.fill = col }
func (c *Canvas) SetFontColor(col color.Color)   { c.fontColor = col }
func (c *Canvas) SetFontSize(size float64)       { c.fontSize = size }

// DrawEllipse strokes the ellipse inscribed in r.
func (c *Canvas) DrawEllipse(r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.applyStroke()
	c.dc.DrawEllipse(r.X+r.W/2, r.Y+r.H/2, r.W/2, r.H/2)
	c.setErr(c.dc.Stroke())
}

// DrawArc strokes an arc of the circle inscribed in r. Elliptical boxes
// are traced on the circle of the smaller axis.
func (c *Canvas) DrawArc(r Rect, start, end float64, clockwise, closed bool) {
	radius := utils.Min(r.W, r.H) / 2
	if radius <= 0 || start == end {
		return
	}

	// gg works in radians on a y-down plane, where increasing angles turn
	// clockwise on screen, and always traces from the first to the second angle.
	a1, a2 := degToRad(-start), degToRad(-end)
	if !clockwise {
		a1, a2 = a2, a1
	}
	cx, cy := r.X+r.W/2, r.Y+r.H/2

	c.applyStroke()
	c.dc.ClearPath()
	c.dc.DrawArc(cx, cy, radius, a1, a2)
	if closed {
		c.dc.ClosePath()
	}
	c.setErr(c.dc.Stroke())
}

// FillRoundedRect fills r with its corners rounded by radius.
func (c *Canvas) FillRoundedRect(r Rect, radius float64) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	radius = utils.Clamp(radius, 0, utils.Min(r.W, r.H)/2)

	c.dc.SetColor(c.fill)
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
	c.setErr(c.dc.Fill())
}

// DrawText draws a single line of text aligned inside r.
func (c *Canvas) DrawText(s string, r Rect, h HAlign, v VAlign) {
	if s == "" || c.fontSize <= 0 {
		return
	}
	face, ok := c.faces[c.fontSize]
	if !ok {
		face = c.font.Face(c.fontSize)
		c.faces[c.fontSize] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(c.fontColor)

	var x, ax float64
	switch h {
	case AlignLeft:
		x, ax = r.X, 0
	case AlignRight:
		x, ax = r.X+r.W, 1
	default:
		x, ax = r.X+r.W/2, 0.5
	}

	var y, ay float64
	switch v {
	case AlignTop:
		y, ay = r.Y, 1
	case AlignBottom:
		y, ay = r.Y+r.H, 0
	default:
		y, ay = r.Y+r.H/2, 0.5
	}
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// Image returns the rasterized canvas as an NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	c.setErr(c.dc.FlushGPU())
	return imaging.Clone(c.dc.Image())
}

// Err returns the first error raised while drawing.
func (c *Canvas) Err() error {
	return c.err
}

// Close releases the underlying drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) applyStroke() {
	c.dc.SetColor(c.stroke)
	c.dc.SetLineWidth(c.strokeWidth)
	switch c.cap {
	case Round:
		c.dc.SetLineCap(gg.LineCapRound)
	default:
		c.dc.SetLineCap(gg.LineCapButt)
	}
}

func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RenderImage renders cfg onto a transparent square image of cfg.Size.
func RenderImage(cfg Config) (*image.NRGBA, error) {
	c, err := NewCanvas(cfg.Size, cfg.Size)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	Render(cfg, c)
	img := c.Image()
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("unable to render the progress indicator: %w", err)
	}
	return img, nil
}
