package ui

import (
	"fmt"
	"io"
)

// Progress prints numbered step lines for a bounded run, like the epochs
// of a training loop. Steps are sequential; the counter advances by one
// per call.
type Progress struct {
	out   io.Writer
	total int
	done  int
}

// NewProgress creates a progress printer for total steps.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step marks the next step finished and prints it.
func (p *Progress) Step(label string) {
	p.done++
	_, _ = fmt.Fprintf(p.out, "%s %s\n", stepStyle.Render(fmt.Sprintf("[%d/%d]", p.done, p.total)), label)
}
