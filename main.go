package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/minimal/cmd"
	"github.com/achilleasa/minimal/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "minimal"
	app.Usage = "intersect rays with a single triangle"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "MINIMAL_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "device",
			Value:  "cpu",
			Usage:  "ray intersection backend; see list-devices",
			EnvVar: "MINIMAL_DEVICE",
		},
		cli.StringFlag{
			Name:   "device-config",
			Value:  "",
			Usage:  "backend config string, e.g. verbose=1",
			EnvVar: "MINIMAL_DEVICE_CONFIG",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "console",
			Usage: "cast two rays at the triangle and print the results",
			Description: `
Cast one ray through the triangle at (0, 0, -1) and one past it at (1, 1, -1),
both along +Z, and print whether each one hit.`,
			Flags: []cli.Flag{
				waitFlag(),
			},
			Action: cmd.RenderConsole,
		},
		{
			Name:  "window",
			Usage: "paint per-pixel hit results into a window",
			Description: `
Trace one ray per pixel every frame and paint hits in red with an animated
intensity until the window is closed (or Escape is pressed).`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 384,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "title",
					Value: "Minimal Test",
					Usage: "window title",
				},
				cli.IntFlag{
					Name:  "max-frames",
					Value: 0,
					Usage: "exit after rendering this many frames; 0 runs until the window is closed",
				},
			},
			Action: cmd.RenderWindow,
		},
		{
			Name:        "frame",
			Usage:       "render the hit image off-screen and save it",
			Description: `Trace the requested number of frames and save the last one. The image format is selected by the output file extension (.png, .webp or .tga).`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 384,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 1,
					Usage: "number of frames to trace",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-devices",
			Usage:  "list available ray intersection backends",
			Action: cmd.ListDevices,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("minimal").Error(err)
		os.Exit(1)
	}
}

// The windows console closes as soon as the process exits so waiting for a
// key press is on by default there.
func waitFlag() cli.Flag {
	const usage = "wait for a key press before exiting"
	if runtime.GOOS == "windows" {
		return cli.BoolTFlag{Name: "wait", Usage: usage}
	}
	return cli.BoolFlag{Name: "wait", Usage: usage}
}
