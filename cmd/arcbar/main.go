package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/arcbar"
	"github.com/esimov/arcbar/imop"
	"github.com/esimov/arcbar/utils"
)

const helperBanner = `
┌─┐┬─┐┌─┐┌┐ ┌─┐┬─┐
├─┤├┬┘│  ├┴┐├─┤├┬┘
┴ ┴┴└─└─┘└─┘┴ ┴┴└─

Circular, arch and flat progress indicator renderer.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination   = flag.String("out", pipeName, "Destination file, directory or pipe")
	progress      = flag.Int("progress", 0, "Current progress value")
	maxProgress   = flag.Int("max", 100, "Maximum progress value")
	size          = flag.Int("size", 100, "Indicator size (diameter or bar width)")
	thickness     = flag.Int("thickness", 10, "Stroke width or bar height")
	progressColor = flag.String("color", "#0000ff", "Progress color")
	leftColor     = flag.String("leftcolor", "#d3d3d3", "Remaining progress color")
	textColor     = flag.String("textcolor", "#000000", "Label color")
	showText      = flag.Bool("text", true, "Show the progress label")
	edgeShape     = flag.String("edge", "butt", "Stroke cap: butt, round")
	shapeType     = flag.String("shape", "circular", "Indicator shape: circular, arch, flat")
	background    = flag.String("bg", "", "Background image path or URL")
	position      = flag.String("pos", "0,0", "Indicator position over the background image")
	blendMode     = flag.String("blend", "normal", "Blend mode over the background: normal, darken, lighten, multiply, screen, overlay")
	scaleFactor   = flag.Float64("scale", 1, "Output scale factor")
	step          = flag.Int("step", 0, "Progress increment between frames")
	delay         = flag.Int("delay", 2, "Animation frame delay in 100ths of a second")
	animate       = flag.Bool("anim", false, "Render an animated gif from 0 to max")
	preview       = flag.Bool("preview", false, "Show the animation in a preview window")
	trace         = flag.Bool("trace", false, "Print the draw calls to stderr")
	workers       = flag.Int("conc", 0, "Number of frames to render concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helperBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc, err := newProcessor()
	if err != nil {
		flag.Usage()
		log.Fatalf(
			utils.DecorateText("\nInvalid option: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		proc.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	if *preview {
		if err := proc.LoadBackground(); err != nil {
			log.Fatalf(utils.DecorateText("Failed to load the background image: %v", utils.ErrorMessage), err)
		}
		go func() {
			if err := proc.ShowPreview(); err != nil {
				log.Fatalf(utils.DecorateText("Preview failed: %v", utils.ErrorMessage), err)
			}
			os.Exit(0)
		}()
		app.Main()
		return
	}

	ops := &arcbar.Ops{
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
		Animate:  *animate,
	}
	if *trace {
		ops.Trace = os.Stderr
	}

	now := time.Now()
	if err := proc.Execute(ops); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError rendering the progress indicator: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	if *destination != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe output has been saved as: %s %s\n",
			utils.DecorateText(*destination, utils.SuccessMessage),
			utils.DefaultColor,
		)
		fmt.Fprintf(os.Stderr, "Execution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
}

// newProcessor builds the processor from the command line flags.
func newProcessor() (*arcbar.Processor, error) {
	shape, err := arcbar.ParseShape(*shapeType)
	if err != nil {
		return nil, err
	}
	edge, err := arcbar.ParseEdgeShape(*edgeShape)
	if err != nil {
		return nil, err
	}
	pc, err := utils.HexToRGBA(*progressColor)
	if err != nil {
		return nil, err
	}
	lc, err := utils.HexToRGBA(*leftColor)
	if err != nil {
		return nil, err
	}
	tc, err := utils.HexToRGBA(*textColor)
	if err != nil {
		return nil, err
	}
	pos, err := parsePoint(*position)
	if err != nil {
		return nil, err
	}
	blend, err := imop.ParseMode(*blendMode)
	if err != nil {
		return nil, err
	}
	if *size <= 0 {
		return nil, fmt.Errorf("the size should be a positive number, got %d", *size)
	}

	return &arcbar.Processor{
		Config: arcbar.Config{
			Progress:          *progress,
			MaxProgress:       *maxProgress,
			Size:              *size,
			Thickness:         *thickness,
			ProgressColor:     pc,
			ProgressLeftColor: lc,
			TextColor:         tc,
			ShowText:          *showText,
			EdgeShape:         edge,
			Shape:             shape,
		},
		Background: *background,
		Position:   pos,
		Blend:      blend,
		Scale:      *scaleFactor,
		Step:       *step,
		Delay:      *delay,
		Spinner:    arcbar.NewSpinner(),
	}, nil
}

// parsePoint parses an "x,y" pair.
func parsePoint(s string) (image.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return image.Point{}, fmt.Errorf("invalid position %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}
