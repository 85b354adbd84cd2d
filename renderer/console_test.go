package renderer

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/achilleasa/minimal/log"
)

func TestConsoleRenderer(t *testing.T) {
	sc := buildTestScene(t)

	var out bytes.Buffer
	r := NewConsole(sc, &out, nil, Options{})
	defer r.Close()

	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines; got %d:\n%s", len(lines), out.String())
	}

	expHit := "0.000000, 0.000000, -1.000000: Found intersection on geometry 0, primitive 0 at tfar=1.000000"
	if lines[0] != expHit {
		t.Fatalf("expected first line to be\n%q\ngot\n%q", expHit, lines[0])
	}

	expMiss := "1.000000, 1.000000, -1.000000: Did not find any intersection."
	if lines[1] != expMiss {
		t.Fatalf("expected second line to be\n%q\ngot\n%q", expMiss, lines[1])
	}

	stats := r.Stats()
	if stats.Frames != 1 || stats.Hits != 1 {
		t.Fatalf("expected 1 frame with 1 hit; got %d frames with %d hits", stats.Frames, stats.Hits)
	}
}

func TestConsoleRendererWaitsForKey(t *testing.T) {
	sc := buildTestScene(t)

	var out bytes.Buffer
	in := strings.NewReader("x")
	r := NewConsole(sc, &out, in, Options{WaitForKey: true})

	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "press any key to exit...") {
		t.Fatalf("expected key prompt in output; got:\n%s", out.String())
	}
	if in.Len() != 0 {
		t.Fatalf("expected the key press to be consumed; %d bytes left", in.Len())
	}

	// EOF on input does not fail the demo.
	r = NewConsole(sc, &out, strings.NewReader(""), Options{WaitForKey: true})
	if err := r.Render(); err != nil {
		t.Fatalf("expected EOF while waiting for a key to be ignored; got %v", err)
	}
}

func TestConsoleRendererWithoutScene(t *testing.T) {
	r := NewConsole(nil, &bytes.Buffer{}, nil, Options{})
	if err := r.Render(); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
}

func TestConsoleRendererLogsHitPoint(t *testing.T) {
	sc := buildTestScene(t)

	var logOut bytes.Buffer
	log.SetSink(&logOut)
	log.SetLevel(log.Debug)
	defer func() {
		log.SetLevel(log.Notice)
		log.SetSink(os.Stdout)
	}()

	r := NewConsole(sc, &bytes.Buffer{}, nil, Options{})
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	// The first ray hits the triangle corner at the origin.
	if exp := "hit point: [0 0 0]"; !strings.Contains(logOut.String(), exp) {
		t.Fatalf("expected debug log to contain %q; got:\n%s", exp, logOut.String())
	}
}
