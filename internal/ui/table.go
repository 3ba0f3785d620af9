package ui

import (
	"fmt"
	"io"
	"strings"
)

// Table renders rows of data in aligned columns with a bold header row.
// Widths are computed before styling, so terminal escape codes never skew
// the alignment.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	return &Table{out: out, headers: headers}
}

// Row appends a row of values. The number of values should match the
// number of headers.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	t.rows = append(t.rows, parts)
}

// Flush renders the table.
func (t *Table) Flush() error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = headerStyle.Render(pad(h, widths[i], i == len(t.headers)-1))
	}
	if _, err := fmt.Fprintln(t.out, strings.Join(header, "  ")); err != nil {
		return err
	}
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = pad(cell, w, i == len(row)-1)
		}
		if _, err := fmt.Fprintln(t.out, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// pad right-pads s to width, except in the last column where trailing
// spaces would only add noise.
func pad(s string, width int, last bool) string {
	if last || len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
