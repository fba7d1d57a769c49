/*
Package arcbar renders circular, arch and flat progress indicators.

The drawing routine maps a progress value onto a fixed sequence of stroke,
fill and text calls issued on a Surface. The package ships two surfaces:
Canvas, which rasterizes the calls with gogpu/gg, and Recorder, which keeps
them in memory. Any other immediate mode canvas can be plugged in by
implementing the Surface interface.

The package provides a command line interface as well, able to export single
frames, frame sequences and animated gifs. To check the supported commands type:

	$ arcbar --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"image/png"
		"log"
		"os"

		"github.com/esimov/arcbar"
	)

	func main() {
		cfg := arcbar.DefaultConfig()
		cfg.Progress = 42
		cfg.Shape = arcbar.Arch

		img, err := arcbar.RenderImage(cfg)
		if err != nil {
			log.Fatalf("Error rendering the progress indicator: %s", err.Error())
		}
		png.Encode(os.Stdout, img)
	}
*/
package arcbar
