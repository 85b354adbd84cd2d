// Package display implements renderer.Window on top of glfw and legacy
// OpenGL pixel transfers.
package display

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// A glfw window with a GL 2.x context.
type Window struct {
	window *glfw.Window
	fbW    int
	fbH    int
}

// Initialize glfw and open a non-resizable window. Escape closes the window.
func Open(width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("display: invalid window size %dx%d", width, height)
	}

	var err error
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not create opengl window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err = gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not init opengl: %w", err)
	}

	w := &Window{window: win}

	// On high-dpi displays the frame buffer is larger than the window.
	w.fbW, w.fbH = win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w.fbW), int32(w.fbH))

	win.SetKeyCallback(w.onKeyEvent)
	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.fbW, w.fbH
}

// Draw the pixels at the window origin and swap buffers.
func (w *Window) Present(pix []uint8, width, height int) {
	gl.DrawPixels(int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	w.window.SwapBuffers()
}

// Destroy the window and terminate glfw.
func (w *Window) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
		glfw.Terminate()
	}
}

func (w *Window) onKeyEvent(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyEscape {
		win.SetShouldClose(true)
	}
}
