package log

import (
	"bytes"
	"strings"
	"testing"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at INFO: %q", out)
	}
	got := lines(&buf)
	if len(got) != 3 {
		t.Fatalf("lines=%q want 3", got)
	}
	for i, want := range []string{"shown 2", "careful", "broken"} {
		if !strings.Contains(got[i], want) {
			t.Fatalf("line %d=%q missing %q", i, got[i], want)
		}
	}
	if !strings.Contains(got[0], "INFO") || !strings.Contains(got[1], "WARN") {
		t.Fatalf("level tags missing in %q", got)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Warnf("quiet")
	l.Infof("quiet")
	if buf.Len() != 0 {
		t.Fatalf("output at ERROR: %q", buf.String())
	}

	l.SetLevel(LevelDebug)
	if l.Level() != LevelDebug {
		t.Fatalf("level=%v", l.Level())
	}
	l.Debugf("frame %d", 7)
	if !strings.Contains(buf.String(), "frame 7") {
		t.Fatalf("debug line missing: %q", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("gone")
	if buf.Len() != 0 {
		t.Fatalf("output at NONE: %q", buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":    LevelDebug,
		" INFO ":   LevelInfo,
		"warn":     LevelInfo,
		"Error":    LevelError,
		"none":     LevelNone,
		"nonsense": LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q)=%v want %v", in, got, want)
		}
	}
}

func TestDiscardIsSilent(t *testing.T) {
	l := Discard()
	if l.Level() != LevelNone {
		t.Fatalf("level=%v", l.Level())
	}
	l.Errorf("nobody hears this")
}
