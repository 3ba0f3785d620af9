package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	stepStyle   = lipgloss.NewStyle().Faint(true)
)

// Errorf prints one styled error line.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errStyle.Render("error:"), fmt.Sprintf(format, args...))
}

// Warnf prints one styled warning line.
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", warnStyle.Render("warning:"), fmt.Sprintf(format, args...))
}
