package cmd

import (
	"fmt"

	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/tracer"
	"github.com/urfave/cli"

	// Register the software backend.
	_ "github.com/achilleasa/minimal/rtc/cpu"
)

// Report device errors the way the intersection library's own samples do.
func logDeviceError(code rtc.ErrorCode, msg string) {
	logger.Errorf("error %d: %s", uint32(code), msg)
}

// Create a device using the backend selected by the global flags.
func openDevice(ctx *cli.Context) (rtc.Device, error) {
	backend := ctx.GlobalString("device")
	dev, err := rtc.NewDevice(backend, ctx.GlobalString("device-config"))
	if err != nil {
		logDeviceError(rtc.CodeOf(err), "cannot create device")
		return nil, fmt.Errorf("could not create %q device: %w", backend, err)
	}

	dev.SetErrorFunc(logDeviceError)
	logger.Infof(`using device "%s" (%s)`, backend, dev.Id())
	return dev, nil
}

// Acquire a device and the tutorial scene, run fn and release the scene and
// the device regardless of how fn returns.
func withScene(open func() (rtc.Device, error), fn func(sc rtc.Scene) error) error {
	dev, err := open()
	if err != nil {
		return err
	}
	defer dev.Release()

	sc, err := tracer.BuildScene(dev)
	if err != nil {
		return err
	}
	defer sc.Release()

	return fn(sc)
}
