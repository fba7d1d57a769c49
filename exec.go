package arcbar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/esimov/arcbar/imop"
	"github.com/esimov/arcbar/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// NewSpinner returns the terminal spinner shown while the frames are rendered.
func NewSpinner() *utils.Spinner {
	return utils.NewSpinner(utils.StatusMsg("rendering the progress indicator..."), time.Millisecond*80, true)
}

// Ops describes where and how the rendered frames are written.
type Ops struct {
	Dst, PipeName string
	Workers       int
	Animate       bool
	Trace         io.Writer
}

// result holds the relevant information about a rendered frame.
type result struct {
	path string
	err  error
}

// Processor renders progress indicators into image files.
type Processor struct {
	Config

	Background string      // optional background image path or URL
	Position   image.Point // top left corner of the indicator on the background
	Blend      imop.Mode   // blend mode used over the background
	Scale      float64     // output scale factor, 1 keeps the indicator size
	Step       int         // progress increment between frames
	Delay      int         // animation frame delay in 100ths of a second
	Spinner    *utils.Spinner

	bg image.Image
}

// LoadBackground opens or downloads the background image, if any.
func (p *Processor) LoadBackground() error {
	if p.Background == "" || p.bg != nil {
		return nil
	}
	bg, err := loadImage(p.Background)
	if err != nil {
		return err
	}
	p.bg = bg
	return nil
}

// Frame renders the indicator at the given progress value.
func (p *Processor) Frame(progress int) (*image.NRGBA, error) {
	cfg := p.Config
	cfg.Progress = progress

	img, err := RenderImage(cfg)
	if err != nil {
		return nil, err
	}
	return scale(overlay(p.bg, img, p.Position, p.Blend), p.Scale), nil
}

// Process writes the frame of the configured progress value to w.
func (p *Processor) Process(w io.Writer, ext string) error {
	img, err := p.Frame(p.Progress)
	if err != nil {
		return err
	}
	return encodeImg(w, ext, img)
}

// Steps returns the progress values of an animation going from 0 to MaxProgress.
func (p *Processor) Steps() []int {
	limit := p.MaxProgress
	if limit <= 0 {
		return []int{0}
	}
	step := p.Step
	if step <= 0 {
		step = utils.Max(limit/100, 1)
	}

	steps := make([]int, 0, limit/step+2)
	for v := 0; v < limit; v += step {
		steps = append(steps, v)
	}
	return append(steps, limit)
}

// Execute renders the frames requested by op.
// A directory destination receives one image per progress step, rendered
// concurrently, while a file or pipe destination receives a single image or,
// when op.Animate is set, an animated gif.
func (p *Processor) Execute(op *Ops) error {
	if p.Spinner == nil {
		p.Spinner = NewSpinner()
	}
	if err := p.LoadBackground(); err != nil {
		return err
	}

	if op.Trace != nil {
		rec := NewRecorder()
		Render(p.Config, rec)
		if _, err := rec.WriteTo(op.Trace); err != nil {
			return fmt.Errorf("unable to write the draw trace: %w", err)
		}
	}

	switch {
	case op.Dst == op.PipeName:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		if op.Animate {
			return p.animate(os.Stdout)
		}
		return p.Process(os.Stdout, "")
	case isDir(op.Dst):
		if op.Animate {
			return errors.New("animations can be saved only as gif, got a directory destination")
		}
		return p.renderDir(op)
	}

	ext := filepath.Ext(op.Dst)
	if !isValidExtension(ext, supportedExtensions) {
		return fmt.Errorf("%v file type not supported", ext)
	}
	if op.Animate && ext != ".gif" {
		return fmt.Errorf("animations can be saved only as gif, got %v", ext)
	}

	dst, err := os.OpenFile(op.Dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if err := dst.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	if op.Animate {
		err = p.animate(dst)
	} else {
		err = p.Process(dst, ext)
	}
	if err != nil {
		// remove the partially written image file in case of an error
		os.Remove(dst.Name())
		return err
	}
	return nil
}

// animate renders every progress step and encodes them as a gif.
func (p *Processor) animate(w io.Writer) error {
	steps := p.Steps()
	frames := make([]*image.NRGBA, len(steps))

	p.Spinner.Start()
	defer p.Spinner.Stop()

	for i, v := range steps {
		p.Spinner.SetMessage(utils.StatusMsg(fmt.Sprintf("rendering frame %d/%d...", i+1, len(steps))))
		img, err := p.Frame(v)
		if err != nil {
			p.Spinner.StopMsg = utils.ErrorMsg("rendering the animation failed")
			return err
		}
		frames[i] = img
	}

	delay := p.Delay
	if delay <= 0 {
		delay = 2
	}
	if err := encodeAnimation(w, frames, delay, color.White); err != nil {
		p.Spinner.StopMsg = utils.ErrorMsg("encoding the animation failed")
		return err
	}
	p.Spinner.StopMsg = utils.SuccessMsg("the animation has been rendered successfully ✔\n")
	return nil
}

// renderDir renders one png per progress step into the destination directory.
func (p *Processor) renderDir(op *Ops) error {
	workers := workerCount(op.Workers)

	var (
		wg   sync.WaitGroup
		err  error
		ch   = make(chan result)
		done = make(chan struct{})
	)
	defer close(done)

	p.Spinner.Start()
	steps := emitSteps(done, p.Steps())

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			p.consumer(op.Dst, ch, done, steps)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var count int
	for res := range ch {
		count++
		if res.err != nil && err == nil {
			err = fmt.Errorf("%s: %w", res.path, res.err)
		}
	}

	if err != nil {
		p.Spinner.StopMsg = utils.ErrorMsg("rendering the frames failed")
	} else {
		p.Spinner.StopMsg = utils.SuccessMsg(fmt.Sprintf("%d frames have been saved into %s ✔\n", count, op.Dst))
	}
	p.Spinner.Stop()

	return err
}

// consumer reads the progress values from the steps channel and writes the rendered frames.
func (p *Processor) consumer(
	dir string,
	res chan<- result,
	done <-chan struct{},
	steps <-chan int,
) {
	for v := range steps {
		path := frameName(dir, v, ".png")
		err := p.writeFrame(path, v)

		select {
		case <-done:
			return
		case res <- result{
			path: path,
			err:  err,
		}:
		}
	}
}

func (p *Processor) writeFrame(path string, progress int) error {
	img, err := p.Frame(progress)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := encodeImg(f, filepath.Ext(path), img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// emitSteps starts a new goroutine sending the progress values on a channel.
// It finishes in case the done channel is getting closed.
func emitSteps(done <-chan struct{}, values []int) <-chan int {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for _, v := range values {
			select {
			case <-done:
				return
			case ch <- v:
			}
		}
	}()
	return ch
}

// workerCount returns the number of workers rendering the frames. It defaults
// to the number of CPUs and never exceeds maxWorkers.
func workerCount(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return utils.Clamp(n, 1, maxWorkers)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
