package renderer

import "github.com/achilleasa/minimal/log"

var logger = log.New("renderer")

type Renderer interface {
	// Render frame(s). Returns when the renderer's presentation path is done.
	Render() error

	// Shutdown renderer and release any presentation resources. The traced
	// scene is owned by the caller and is not released.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// A presentation surface for the interactive renderer.
type Window interface {
	// Returns true once the user asked for the window to close.
	ShouldClose() bool

	// Process pending input events.
	PollEvents()

	// Get the frame buffer dimensions in pixels.
	FramebufferSize() (int, int)

	// Display an RGBA8 pixel buffer whose first row is the bottom row.
	Present(pix []uint8, w, h int)

	// Destroy the window.
	Close()
}
