package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/tracer"
	"github.com/ftrvxmtrx/tga"
)

type imageEncoder func(w io.Writer, img image.Image) error

// Output encoders keyed by lowercase file extension.
var encoders = map[string]imageEncoder{
	".png": png.Encode,
	".tga": tga.Encode,
	".webp": func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
}

// A renderer that traces frames off-screen and saves the last one.
type snapshotRenderer struct {
	scene   rtc.Scene
	options Options
	encode  imageEncoder
	stats   FrameStats
}

// Create a snapshot renderer. The output format is selected by the
// extension of opts.Out (.png, .webp or .tga).
func NewSnapshot(sc rtc.Scene, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameSize
	}

	ext := strings.ToLower(filepath.Ext(opts.Out))
	encode, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if opts.Frames == 0 {
		opts.Frames = 1
	}

	return &snapshotRenderer{
		scene:   sc,
		options: opts,
		encode:  encode,
	}, nil
}

func (r *snapshotRenderer) Render() error {
	fb := tracer.NewFrameBuffer(int(r.options.FrameW), int(r.options.FrameH))
	r.stats.FrameW, r.stats.FrameH = fb.W, fb.H

	for frame := uint32(1); frame <= r.options.Frames; frame++ {
		start := time.Now()
		hits := tracer.TraceFrame(r.scene, fb, frame)
		r.stats.add(hits, time.Since(start))
	}

	f, err := os.Create(r.options.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = r.encode(f, fb.Image()); err != nil {
		return fmt.Errorf("renderer: could not encode %s: %w", r.options.Out, err)
	}
	logger.Noticef("wrote frame to %s in %d ms", r.options.Out, time.Since(start).Nanoseconds()/1000000)

	return f.Close()
}

func (r *snapshotRenderer) Close() {}

func (r *snapshotRenderer) Stats() FrameStats {
	return r.stats
}
