package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Infof("created %s", "icon-green-22.png")
	l.Sync()

	out := buf.String()
	if !strings.Contains(out, "created icon-green-22.png") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("output %q missing level", out)
	}
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Debugf("hidden")
	l.Errorf("boom")
	l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "boom") {
		t.Errorf("error line missing from %q", out)
	}
}
