package main

import (
	"flag"

	"github.com/gekko3d/glowdots"
)

func main() {
	width := flag.Int("width", 500, "window width")
	height := flag.Int("height", 500, "window height")
	lights := flag.Int("lights", 4, "number of orbiting lights (max 8)")
	software := flag.Bool("software", false, "render on the CPU instead of the GPU")
	turbo := flag.Bool("turbo", false, "disable vsync")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	app := glowdots.NewApp()
	app.UseModules(
		glowdots.LoggingModule{Prefix: "glowdots", Debug: *debug},
		glowdots.TimeModule{},
		glowdots.InputModule{},
		glowdots.ControlsModule{},
		glowdots.LightsModule{Count: *lights},
	)

	if *software {
		app.UseSoftware(*width, *height, "glowdots")
		app.UseModules(glowdots.CaptureModule{})
	} else {
		app.UseWGPU(*width, *height, "glowdots", *turbo)
	}

	app.Run()
}
