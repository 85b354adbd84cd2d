package renderer

import (
	"time"

	"github.com/achilleasa/minimal/log"
	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/tracer"
)

// A renderer that repaints the hit image into a window every frame.
type interactiveRenderer struct {
	scene   rtc.Scene
	window  Window
	options Options

	frame uint32
	stats FrameStats
}

// Create an interactive renderer presenting frames to the given window. The
// renderer takes ownership of the window and closes it on Close.
func NewInteractive(sc rtc.Scene, window Window, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if window == nil {
		return nil, ErrWindowNotDefined
	}

	return &interactiveRenderer{
		scene:   sc,
		window:  window,
		options: opts,
	}, nil
}

// Run the render loop until the window is closed or the frame limit is reached.
func (r *interactiveRenderer) Render() error {
	if r.window == nil {
		return ErrWindowNotDefined
	}

	w, h := r.window.FramebufferSize()
	if w <= 0 || h <= 0 {
		return ErrInvalidFrameSize
	}
	logger.Noticef("framebuffer size: %d, %d", w, h)

	fb := tracer.NewFrameBuffer(w, h)
	r.stats.FrameW, r.stats.FrameH = w, h

	for !r.window.ShouldClose() {
		r.window.PollEvents()

		r.frame++
		start := time.Now()
		hits := tracer.TraceFrame(r.scene, fb, r.frame)
		r.stats.add(hits, time.Since(start))
		if log.Enabled(log.Debug) {
			logger.Debugf("frame %d: %d hit pixels in %s", r.frame, hits, r.stats.RenderTime)
		}

		r.window.Present(fb.Pix, fb.W, fb.H)

		if r.options.MaxFrames != 0 && r.stats.Frames >= r.options.MaxFrames {
			logger.Infof("reached frame limit (%d)", r.options.MaxFrames)
			break
		}
	}

	logger.Infof("rendered %d frames in %s", r.stats.Frames, r.stats.TotalRenderTime)
	return nil
}

func (r *interactiveRenderer) Close() {
	if r.window != nil {
		r.window.Close()
		r.window = nil
	}
}

func (r *interactiveRenderer) Stats() FrameStats {
	return r.stats
}
