package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/minimal/renderer"
	"github.com/achilleasa/minimal/rtc"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Trace frames off-screen and save the last one to an image file.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	frameW, frameH, err := frameDims(ctx)
	if err != nil {
		return err
	}
	frames := ctx.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("%w: --frames must be positive; got %d", renderer.ErrInvalidFrameCount, frames)
	}

	opts := renderer.Options{
		FrameW: frameW,
		FrameH: frameH,
		Frames: uint32(frames),
		Out:    ctx.String("out"),
	}

	return withScene(func() (rtc.Device, error) { return openDevice(ctx) }, func(sc rtc.Scene) error {
		r, err := renderer.NewSnapshot(sc, opts)
		if err != nil {
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

// Read the width and height flags. Both must be positive.
func frameDims(ctx *cli.Context) (uint32, uint32, error) {
	w, h := ctx.Int("width"), ctx.Int("height")
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", renderer.ErrInvalidFrameSize, w, h)
	}
	return uint32(w), uint32(h), nil
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Frame size", "Hit pixels", "% of frame", "Last frame"})

	var hitPercent float32
	if pixels := stats.FrameW * stats.FrameH; pixels > 0 {
		hitPercent = 100.0 * float32(stats.Hits) / float32(pixels)
	}
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%dx%d", stats.FrameW, stats.FrameH),
		fmt.Sprintf("%d", stats.Hits),
		fmt.Sprintf("%02.1f %%", hitPercent),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", stats.TotalRenderTime.String()})

	table.Render()
	return buf.String()
}
