package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensity(t *testing.T) {
	assert.Equal(t, uint8(128), Intensity(0))
	assert.Equal(t, uint8(129), Intensity(1))
	assert.Equal(t, uint8(255), Intensity(127))
	assert.Equal(t, uint8(128), Intensity(128))
	assert.Equal(t, uint8(129), Intensity(129))

	for frame := uint32(0); frame < 1024; frame++ {
		c := Intensity(frame)
		require.GreaterOrEqual(t, c, uint8(128))
		require.Equal(t, c, Intensity(frame+128), "intensity should wrap every 128 frames")
	}
}

func TestPixelOrigin(t *testing.T) {
	assert.Equal(t, float32(-0.1), PixelOrigin(0, 0, 13, 7)[0])
	assert.Equal(t, float32(-0.1), PixelOrigin(0, 0, 13, 7)[1])
	assert.Equal(t, float32(-1), PixelOrigin(0, 0, 13, 7)[2])
	assert.InDelta(t, 1.1, PixelOrigin(12, 6, 13, 7)[0], 1e-6)
	assert.InDelta(t, 1.1, PixelOrigin(12, 6, 13, 7)[1], 1e-6)
	assert.InDelta(t, 0.5, PixelOrigin(6, 3, 13, 7)[0], 1e-6)

	// Degenerate single pixel axis
	assert.Equal(t, float32(-0.1), PixelOrigin(0, 0, 1, 1)[0])
	assert.Equal(t, float32(-0.1), PixelOrigin(0, 0, 1, 1)[1])
}

func TestTraceFrame(t *testing.T) {
	dev, sc := buildTestScene(t)
	defer dev.Release()
	defer sc.Release()

	const (
		w = 64
		h = 48
	)
	fb := NewFrameBuffer(w, h)
	require.Len(t, fb.Pix, w*h*4)

	// Dirty the buffer to check that every byte is overwritten.
	for i := range fb.Pix {
		fb.Pix[i] = 0x42
	}

	const margin = 1e-3
	for _, frame := range []uint32{1, 2, 200} {
		c := Intensity(frame)
		hits := TraceFrame(sc, fb, frame)
		assert.Greater(t, hits, 0, "frame %d", frame)

		counted := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				o := PixelOrigin(x, y, w, h)
				px := fb.Pix[fb.Offset(x, y) : fb.Offset(x, y)+4]

				require.Equal(t, uint8(0), px[1], "green at (%d, %d)", x, y)
				require.Equal(t, uint8(0), px[2], "blue at (%d, %d)", x, y)
				require.Equal(t, uint8(255), px[3], "alpha at (%d, %d)", x, y)
				require.Contains(t, []uint8{0, c}, px[0], "red at (%d, %d)", x, y)
				if px[0] == c {
					counted++
				}

				inside := o[0] > margin && o[1] > margin && o[0]+o[1] < 1-margin
				outside := o[0] < -margin || o[1] < -margin || o[0]+o[1] > 1+margin
				switch {
				case inside:
					require.Equal(t, c, px[0], "expected pixel (%d, %d) inside the triangle to be lit", x, y)
				case outside:
					require.Equal(t, uint8(0), px[0], "expected pixel (%d, %d) outside the triangle to be dark", x, y)
				}
			}
		}
		assert.Equal(t, hits, counted, "frame %d", frame)
	}
}

func TestFrameBufferImageIsFlipped(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	// Bottom-left pixel in frame buffer coordinates
	copy(fb.Pix[fb.Offset(0, 0):], []uint8{10, 20, 30, 255})

	img := fb.Image()
	require.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, []uint8{10, 20, 30, 255}, img.Pix[img.PixOffset(0, 1):img.PixOffset(0, 1)+4])
	assert.Equal(t, []uint8{0, 0, 0, 0}, img.Pix[img.PixOffset(0, 0):img.PixOffset(0, 0)+4])
}
