package cmd

import (
	"fmt"

	"github.com/achilleasa/minimal/renderer"
	"github.com/achilleasa/minimal/renderer/display"
	"github.com/achilleasa/minimal/rtc"
	"github.com/urfave/cli"
)

// Open a window and repaint the hit image every frame until it is closed.
func RenderWindow(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	frameW, frameH, err := frameDims(ctx)
	if err != nil {
		return err
	}
	maxFrames := ctx.Int("max-frames")
	if maxFrames < 0 {
		return fmt.Errorf("%w: --max-frames must not be negative; got %d", renderer.ErrInvalidFrameCount, maxFrames)
	}

	opts := renderer.Options{
		FrameW:    frameW,
		FrameH:    frameH,
		Title:     ctx.String("title"),
		MaxFrames: uint32(maxFrames),
	}

	return withScene(func() (rtc.Device, error) { return openDevice(ctx) }, func(sc rtc.Scene) error {
		win, err := display.Open(int(opts.FrameW), int(opts.FrameH), opts.Title)
		if err != nil {
			return err
		}

		r, err := renderer.NewInteractive(sc, win, opts)
		if err != nil {
			win.Close()
			return err
		}
		defer r.Close()

		if err = r.Render(); err != nil {
			return err
		}

		displayFrameStats(r.Stats())
		return nil
	})
}
