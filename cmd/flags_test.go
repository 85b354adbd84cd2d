package cmd

import (
	"errors"
	"flag"
	"testing"

	"github.com/achilleasa/minimal/renderer"
	"github.com/urfave/cli"
)

// Build a command context with the frame/window flags set to the given values.
func newFrameContext(t *testing.T, width, height, frames, maxFrames string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("width", 512, "")
	set.Int("height", 384, "")
	set.Int("frames", 1, "")
	set.Int("max-frames", 0, "")
	set.String("title", "test", "")
	set.String("out", "frame.png", "")

	args := []string{
		"-width", width,
		"-height", height,
		"-frames", frames,
		"-max-frames", maxFrames,
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestRenderFrameRejectsInvalidFlags(t *testing.T) {
	type spec struct {
		width, height, frames string
		expErr                error
	}
	specs := []spec{
		{"-16", "4", "1", renderer.ErrInvalidFrameSize},
		{"16", "-4", "1", renderer.ErrInvalidFrameSize},
		{"0", "4", "1", renderer.ErrInvalidFrameSize},
		{"16", "4", "-1", renderer.ErrInvalidFrameCount},
		{"16", "4", "0", renderer.ErrInvalidFrameCount},
	}

	for index, s := range specs {
		ctx := newFrameContext(t, s.width, s.height, s.frames, "0")
		err := RenderFrame(ctx)
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestRenderWindowRejectsInvalidFlags(t *testing.T) {
	type spec struct {
		width, height, maxFrames string
		expErr                   error
	}
	specs := []spec{
		{"-1", "384", "0", renderer.ErrInvalidFrameSize},
		{"512", "-1", "0", renderer.ErrInvalidFrameSize},
		{"512", "0", "0", renderer.ErrInvalidFrameSize},
		{"512", "384", "-1", renderer.ErrInvalidFrameCount},
	}

	for index, s := range specs {
		ctx := newFrameContext(t, s.width, s.height, "1", s.maxFrames)
		err := RenderWindow(ctx)
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestFrameDims(t *testing.T) {
	w, h, err := frameDims(newFrameContext(t, "16", "8", "1", "0"))
	if err != nil {
		t.Fatal(err)
	}
	if w != 16 || h != 8 {
		t.Fatalf("expected 16x8; got %dx%d", w, h)
	}
}
