package renderer

import (
	"testing"

	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/rtc/cpu"
	"github.com/achilleasa/minimal/tracer"
)

func buildTestScene(t *testing.T) rtc.Scene {
	t.Helper()

	dev, err := cpu.NewDevice("")
	if err != nil {
		t.Fatal(err)
	}
	// The scene keeps the device alive until it is released.
	defer dev.Release()

	sc, err := tracer.BuildScene(dev)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sc.Release)
	return sc
}
