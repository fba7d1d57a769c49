package arcbar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/arcbar/imop"
	"github.com/esimov/arcbar/utils"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// supportedExtensions lists the output formats a frame can be encoded to.
var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff"}

// loadImage opens a local image or downloads it in case src is an URL.
func loadImage(src string) (image.Image, error) {
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		defer f.Close()

		img, err := imaging.Decode(f, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("could not decode the downloaded image: %w", err)
		}
		return img, nil
	}

	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the background file: %w", err)
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("the background should be an image file")
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the background file: %w", err)
	}
	return img, nil
}

// overlay draws the indicator on top of bg with its top left corner at pos,
// mixing the colors with the blend mode when it is not the normal one.
func overlay(bg, fg image.Image, pos image.Point, mode imop.Mode) *image.NRGBA {
	switch {
	case bg == nil:
		return imaging.Clone(fg)
	case mode == "" || mode == imop.Normal:
		return imaging.Overlay(bg, fg, pos, 1.0)
	default:
		return imop.Composite(bg, fg, pos, mode)
	}
}

// flatten composes img over an opaque background color.
func flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	return imaging.Overlay(imaging.New(b.Dx(), b.Dy(), bg), img, image.Point{}, 1.0)
}

// scale resizes img by the given factor, preserving the aspect ratio.
func scale(img *image.NRGBA, factor float64) *image.NRGBA {
	if factor <= 0 || factor == 1 {
		return img
	}
	w := int(float64(img.Bounds().Dx())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	return imaging.Resize(img, w, 0, imaging.Lanczos)
}

// encodeImg encodes an image to w, choosing the format by the file extension.
// An empty extension, used for pipes, selects png.
func encodeImg(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, flatten(img, color.White), &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".gif":
		return gif.Encode(w, flatten(img, color.White), nil)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.New("unsupported image format")
	}
}

// encodeAnimation writes the frames as a looping animated gif.
// Transparent pixels are composed over bg, since the palette has no alpha.
func encodeAnimation(w io.Writer, frames []*image.NRGBA, delay int, bg color.Color) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		src := flatten(frame, bg)
		dst := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(dst, src.Bounds(), src, image.Point{})

		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}

// frameName returns the file name of the frame rendered at the given progress.
func frameName(dir string, progress int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%05d%s", progress, ext))
}
