package imop

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/arcbar/utils"
)

// Composite draws src over a copy of dst with its top left corner at pos,
// mixing the colors with the given blend mode. The result has the bounds of dst.
func Composite(dst, src image.Image, pos image.Point, mode Mode) *image.NRGBA {
	b := dst.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), dst, b.Min, draw.Src)

	sb := src.Bounds()
	area := image.Rectangle{Min: pos, Max: pos.Add(sb.Size())}.Intersect(out.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			s := color.NRGBAModel.Convert(src.At(sb.Min.X+x-pos.X, sb.Min.Y+y-pos.Y)).(color.NRGBA)
			if s.A == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			d := color.NRGBA{R: out.Pix[i], G: out.Pix[i+1], B: out.Pix[i+2], A: out.Pix[i+3]}

			c := mix(d, s, mode)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return out
}

// mix applies the blend mode and the source-over operator on a single pixel.
func mix(b, s color.NRGBA, mode Mode) color.NRGBA {
	as, ab := norm(s.A), norm(b.A)
	ao := as + ab*(1-as)
	if ao == 0 {
		return color.NRGBA{}
	}

	channel := func(cb, cs uint8) uint8 {
		bn, sn := norm(cb), norm(cs)
		// the blended color only applies where the backdrop is opaque
		sn = (1-ab)*sn + ab*mode.blend(bn, sn)
		return denorm((as*sn + ab*bn*(1-as)) / ao)
	}
	return color.NRGBA{
		R: channel(b.R, s.R),
		G: channel(b.G, s.G),
		B: channel(b.B, s.B),
		A: denorm(ao),
	}
}

func norm(v uint8) float64 {
	return float64(v) / 255
}

func denorm(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
}
