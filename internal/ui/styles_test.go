package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "broke: %d", 7)
	out := buf.String()
	if !strings.Contains(out, "error:") || !strings.Contains(out, "broke: 7") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, "careful")
	out := buf.String()
	if !strings.Contains(out, "warning:") || !strings.Contains(out, "careful") {
		t.Errorf("unexpected output: %q", out)
	}
}
