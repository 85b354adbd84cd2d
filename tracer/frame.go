package tracer

import (
	"image"

	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/types"
)

// All primary rays travel along +Z.
var primaryRayDir = types.XYZ(0, 0, 1)

// An RGBA8 pixel buffer. Row 0 is the bottom row of the displayed image
// which matches the layout expected by glDrawPixels.
type FrameBuffer struct {
	W, H int
	Pix  []uint8
}

// Allocate a frame buffer with the given dimensions.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*4),
	}
}

// Get the offset of pixel (x, y) into Pix.
func (fb *FrameBuffer) Offset(x, y int) int {
	return 4 * (y*fb.W + x)
}

// Convert the frame buffer into a top-down image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	rowLen := fb.W * 4
	for y := 0; y < fb.H; y++ {
		src := fb.Pix[y*rowLen : (y+1)*rowLen]
		dstY := fb.H - 1 - y
		copy(img.Pix[dstY*img.Stride:dstY*img.Stride+rowLen], src)
	}
	return img
}

// Get the red channel intensity used for hits in the given frame. The value
// cycles through [128, 255] and wraps every 128 frames.
func Intensity(frame uint32) uint8 {
	return uint8(frame%128) + 128
}

// Map a pixel to its primary ray origin. The frame covers [-0.1, 1.1] on
// both axes at z = -1 so the unit triangle sits inside it with a small
// margin. A single-pixel axis maps to -0.1.
func PixelOrigin(x, y, w, h int) types.Vec3 {
	return types.XYZ(axisCoord(x, w), axisCoord(y, h), -1)
}

func axisCoord(p, size int) float32 {
	if size < 2 {
		return -0.1
	}
	return -0.1 + 1.2*float32(p)/float32(size-1)
}

// Trace one primary ray per pixel and overwrite the whole frame buffer. Hit
// pixels get the frame's intensity in the red channel, every other channel
// is cleared and alpha is set to 255. Returns the number of hit pixels.
func TraceFrame(sc rtc.Scene, fb *FrameBuffer, frame uint32) int {
	c := Intensity(frame)
	hits := 0

	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			offset := fb.Offset(x, y)
			if CastRay(sc, PixelOrigin(x, y, fb.W, fb.H), primaryRayDir) {
				fb.Pix[offset] = c
				hits++
			} else {
				fb.Pix[offset] = 0
			}
			fb.Pix[offset+1] = 0
			fb.Pix[offset+2] = 0
			fb.Pix[offset+3] = 255
		}
	}

	return hits
}
