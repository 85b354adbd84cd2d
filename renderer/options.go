package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Window title for the interactive renderer.
	Title string

	// Stop the interactive renderer after this many frames; 0 renders
	// until the window is closed.
	MaxFrames uint32

	// Number of frames traced by the snapshot renderer. Only the last one
	// is saved.
	Frames uint32

	// Output image for the snapshot renderer. The format is selected by the
	// file extension.
	Out string

	// Block on a key press after the console demo completes.
	WaitForKey bool
}
