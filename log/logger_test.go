package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in     string
		exp    Level
		expErr bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" Warning ", Warning, false},
		{"ERROR", Error, false},
		{"verbose", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error parsing %q", index, s.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", index, s.exp, level)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug message")
	logger.Notice("visible notice message")

	out := buf.String()
	if strings.Contains(out, "hidden debug message") {
		t.Fatalf("expected debug message to be filtered out at notice level; got %q", out)
	}
	if !strings.Contains(out, "visible notice message") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected notice message tagged with module name; got %q", out)
	}

	SetLevel(Debug)
	if !Enabled(Debug) {
		t.Fatal("expected debug level to be enabled")
	}
	logger.Debugf("now visible %d", 42)
	if !strings.Contains(buf.String(), "now visible 42") {
		t.Fatalf("expected debug message at debug level; got %q", buf.String())
	}
}
