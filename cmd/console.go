package cmd

import (
	"os"

	"github.com/achilleasa/minimal/renderer"
	"github.com/achilleasa/minimal/rtc"
	"github.com/urfave/cli"
)

// Cast the two demo rays and print the results.
func RenderConsole(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := renderer.Options{
		WaitForKey: ctx.Bool("wait"),
	}

	return withScene(func() (rtc.Device, error) { return openDevice(ctx) }, func(sc rtc.Scene) error {
		r := renderer.NewConsole(sc, os.Stdout, os.Stdin, opts)
		defer r.Close()

		return r.Render()
	})
}
