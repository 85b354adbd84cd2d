package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrWindowNotDefined  = errors.New("renderer: no window defined")
	ErrInvalidFrameSize  = errors.New("renderer: invalid frame dimensions")
	ErrInvalidFrameCount = errors.New("renderer: invalid frame count")
	ErrUnsupportedFormat = errors.New("renderer: unsupported output image format")
)
