package arcbar

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/esimov/arcbar/imop"
	"github.com/esimov/arcbar/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func newTestProcessor(cfg Config) *Processor {
	s := utils.NewSpinner("", time.Millisecond*10, false)
	s.SetWriter(io.Discard)

	return &Processor{
		Config:  cfg,
		Scale:   1,
		Spinner: s,
	}
}

func TestProcessor_Steps(t *testing.T) {
	cases := []struct {
		max, step int
		want      []int
	}{
		{10, 3, []int{0, 3, 6, 9, 10}},
		{4, 1, []int{0, 1, 2, 3, 4}},
		{4, 10, []int{0, 4}},
		{0, 1, []int{0}},
		{-3, 1, []int{0}},
	}
	for _, c := range cases {
		p := newTestProcessor(Config{MaxProgress: c.max})
		p.Step = c.step
		if got := p.Steps(); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Steps(%d, %d) expected to be %v. Got %v", c.max, c.step, c.want, got)
		}
	}

	p := newTestProcessor(Config{MaxProgress: 1000})
	if steps := p.Steps(); len(steps) != 101 || steps[1] != 10 {
		t.Errorf("The default step expected to produce 101 frames. Got %d", len(steps))
	}
}

func TestProcessor_ShouldEncodeAllFormats(t *testing.T) {
	p := newTestProcessor(testConfig(Flat, 40, 100))

	for _, ext := range supportedExtensions {
		var buf bytes.Buffer
		if err := p.Process(&buf, ext); err != nil {
			t.Fatalf("could not encode %s: %v", ext, err)
		}
		img, _, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("could not decode %s: %v", ext, err)
		}
		if img.Bounds().Dx() != 100 {
			t.Errorf("%s: image width expected to be %v. Got %v", ext, 100, img.Bounds().Dx())
		}
	}

	if err := p.Process(io.Discard, ".webp"); err == nil {
		t.Errorf("An unsupported format should have been rejected")
	}
}

func TestProcessor_ShouldScaleOutput(t *testing.T) {
	p := newTestProcessor(testConfig(Circular, 40, 100))
	p.Scale = 0.5

	img, err := p.Frame(40)
	if err != nil {
		t.Fatalf("could not render the frame: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("Scaled frame expected to be 50x50. Got %v", img.Bounds())
	}
}

func TestProcessor_ExecuteFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "progress.png")
	p := newTestProcessor(testConfig(Arch, 60, 100))

	var trace bytes.Buffer
	if err := p.Execute(&Ops{Dst: dst, PipeName: "-", Trace: &trace}); err != nil {
		t.Fatalf("could not execute: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("could not open the output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("could not decode the output: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("Output size expected to be 100x100. Got %v", img.Bounds())
	}
	if !strings.Contains(trace.String(), "arc") || !strings.Contains(trace.String(), "60/100") {
		t.Errorf("Trace expected to list the draw calls. Got %q", trace.String())
	}
}

func TestProcessor_ExecuteShouldRejectInvalidDestinations(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(testConfig(Circular, 60, 100))

	if err := p.Execute(&Ops{Dst: filepath.Join(dir, "progress.webp"), PipeName: "-"}); err == nil {
		t.Errorf("An unsupported extension should have been rejected")
	}
	if err := p.Execute(&Ops{Dst: filepath.Join(dir, "progress.png"), PipeName: "-", Animate: true}); err == nil {
		t.Errorf("An animation should be saved only as gif")
	}
}

func TestProcessor_ExecuteShouldRejectAnimationIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(testConfig(Circular, 0, 4))

	if err := p.Execute(&Ops{Dst: dir, PipeName: "-", Animate: true}); err == nil {
		t.Errorf("An animation into a directory should have been rejected")
	}
	if files, _ := filepath.Glob(filepath.Join(dir, "*")); len(files) != 0 {
		t.Errorf("No frames expected to be written. Got %v", files)
	}
}

func TestProcessor_WorkerCount(t *testing.T) {
	cases := map[int]int{
		1:              1,
		3:              3,
		maxWorkers:     maxWorkers,
		maxWorkers + 1: maxWorkers,
		1000:           maxWorkers,
	}
	for in, want := range cases {
		if got := workerCount(in); got != want {
			t.Errorf("workerCount(%d) expected to be %v. Got %v", in, want, got)
		}
	}
	for _, in := range []int{0, -5} {
		if got := workerCount(in); got < 1 || got > maxWorkers {
			t.Errorf("workerCount(%d) expected to be within [1, %d]. Got %v", in, maxWorkers, got)
		}
	}
}

func TestProcessor_ExecuteDirectory(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(testConfig(Circular, 0, 4))
	p.Step = 1

	if err := p.Execute(&Ops{Dst: dir, PipeName: "-", Workers: 3}); err != nil {
		t.Fatalf("could not execute: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 5 {
		t.Fatalf("Expected 5 frames. Got %d: %v", len(files), files)
	}
	if _, err := os.Stat(frameName(dir, 4, ".png")); err != nil {
		t.Errorf("The last frame expected to be rendered: %v", err)
	}
}

func TestProcessor_ExecuteAnimation(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "progress.gif")
	p := newTestProcessor(testConfig(Flat, 0, 10))
	p.Step = 2
	p.Delay = 5

	if err := p.Execute(&Ops{Dst: dst, PipeName: "-", Animate: true}); err != nil {
		t.Fatalf("could not execute: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("could not open the output: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("could not decode the animation: %v", err)
	}
	if len(anim.Image) != len(p.Steps()) {
		t.Errorf("Expected %d frames. Got %d", len(p.Steps()), len(anim.Image))
	}
	if anim.Delay[0] != 5 {
		t.Errorf("Frame delay expected to be %v. Got %v", 5, anim.Delay[0])
	}
}

func TestProcessor_ExecuteWithBackground(t *testing.T) {
	dir := t.TempDir()
	bgPath := filepath.Join(dir, "background.png")

	bg := image.NewNRGBA(image.Rect(0, 0, 200, 150))
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i], bg.Pix[i+1], bg.Pix[i+2], bg.Pix[i+3] = 0x20, 0x20, 0x20, 0xff
	}
	f, err := os.Create(bgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, bg); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, mode := range []imop.Mode{imop.Normal, imop.Screen} {
		dst := filepath.Join(dir, "out_"+string(mode)+".png")
		p := newTestProcessor(testConfig(Circular, 50, 100))
		p.Background = bgPath
		p.Position = image.Pt(10, 20)
		p.Blend = mode

		if err := p.Execute(&Ops{Dst: dst, PipeName: "-"}); err != nil {
			t.Fatalf("could not execute: %v", err)
		}

		out, err := os.Open(dst)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(out)
		out.Close()
		if err != nil {
			t.Fatalf("could not decode the output: %v", err)
		}
		if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
			t.Errorf("%s: output expected to keep the background size. Got %v", mode, img.Bounds())
		}
		if _, _, _, a := img.At(190, 140).RGBA(); a != 0xffff {
			t.Errorf("%s: background expected to stay opaque", mode)
		}
	}
}
