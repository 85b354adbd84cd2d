package renderer

import "time"

type FrameStats struct {
	// Number of completed frames.
	Frames uint32

	// Frame dims.
	FrameW int
	FrameH int

	// Hit pixels (or rays for the console renderer) in the last frame.
	Hits int

	// Trace time for the last frame.
	RenderTime time.Duration

	// Accumulated trace time for all frames.
	TotalRenderTime time.Duration
}

// Record a completed frame.
func (s *FrameStats) add(hits int, renderTime time.Duration) {
	s.Frames++
	s.Hits = hits
	s.RenderTime = renderTime
	s.TotalRenderTime += renderTime
}
