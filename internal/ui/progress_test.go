package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgress_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)

	p.Step("epoch 1")
	p.Step("epoch 2")
	p.Step("epoch 3")

	out := buf.String()
	for _, want := range []string{"[1/3]", "epoch 1", "[2/3]", "epoch 2", "[3/3]", "epoch 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in progress output: %s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}
