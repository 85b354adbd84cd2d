package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/tracer"
	"github.com/achilleasa/minimal/types"
)

// A ray cast by the console demo.
type ConsoleRay struct {
	Org types.Vec3
	Dir types.Vec3
}

// The console demo casts one ray through the triangle and one that passes
// outside of it.
var ConsoleRays = []ConsoleRay{
	{Org: types.XYZ(0, 0, -1), Dir: types.XYZ(0, 0, 1)},
	{Org: types.XYZ(1, 1, -1), Dir: types.XYZ(0, 0, 1)},
}

// A renderer that casts a fixed set of rays and prints the results.
type consoleRenderer struct {
	scene   rtc.Scene
	out     io.Writer
	in      io.Reader
	options Options
	stats   FrameStats
}

// Create a console renderer writing results to out. If opts.WaitForKey is
// set, Render blocks until a byte can be read from in.
func NewConsole(sc rtc.Scene, out io.Writer, in io.Reader, opts Options) Renderer {
	return &consoleRenderer{
		scene:   sc,
		out:     out,
		in:      in,
		options: opts,
	}
}

func (r *consoleRenderer) Render() error {
	if r.scene == nil {
		return ErrSceneNotDefined
	}

	start := time.Now()
	hits := 0
	for _, cr := range ConsoleRays {
		ray := tracer.Intersect(r.scene, cr.Org, cr.Dir)

		fmt.Fprintf(r.out, "%f, %f, %f: ", cr.Org[0], cr.Org[1], cr.Org[2])
		if ray.Hit() {
			hits++
			fmt.Fprintf(r.out, "Found intersection on geometry %d, primitive %d at tfar=%f\n", ray.GeomID, ray.PrimID, ray.TFar)
			logger.Debugf("hit point: %v (u: %f, v: %f)", ray.HitPoint(), ray.U, ray.V)
		} else {
			fmt.Fprintln(r.out, "Did not find any intersection.")
		}
	}
	r.stats.add(hits, time.Since(start))
	logger.Debugf("cast %d rays in %s", len(ConsoleRays), r.stats.RenderTime)

	if r.options.WaitForKey && r.in != nil {
		fmt.Fprint(r.out, "press any key to exit...")
		var key [1]byte
		if _, err := r.in.Read(key[:]); err != nil && err != io.EOF {
			return err
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *consoleRenderer) Close() {}

func (r *consoleRenderer) Stats() FrameStats {
	return r.stats
}
