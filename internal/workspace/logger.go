package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger returns the named command logger, opening log/<name>.log in
// append mode on first use. The same logger comes back for the same name,
// so a command logging twice appends two records to one file.
func (w *Workspace) Logger(name string) (*slog.Logger, error) {
	if lg, ok := w.loggers[name]; ok {
		return lg, nil
	}
	dir, err := w.LogPath()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644) //nolint:gosec // log file lives inside the workspace
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	lg := slog.New(slog.NewTextHandler(f, nil))
	if w.loggers == nil {
		w.loggers = make(map[string]*slog.Logger)
	}
	w.loggers[name] = lg
	w.files = append(w.files, f)
	return lg, nil
}

// Close releases the open log files. The workspace stays usable; the next
// Logger call reopens its file.
func (w *Workspace) Close() error {
	var first error
	for _, f := range w.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	w.files = nil
	w.loggers = nil
	return first
}
