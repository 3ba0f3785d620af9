package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
)

// Workspace is one experiment directory. Nothing is touched on disk until
// a path accessor or Save is called, so constructing a workspace for a
// directory that does not exist yet is fine.
type Workspace struct {
	root     string
	registry *model.Registry

	doc     *conf.Document
	loggers map[string]*slog.Logger
	files   []*os.File
}

// NotConfiguredError reports a workspace without a usable configuration,
// whether the directory is missing, the config file is absent or
// unreadable, or the document is incomplete.
type NotConfiguredError struct {
	Path string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("workspace %s is not configured", e.Path)
}

// New returns a handle on the workspace at root. The registry resolves the
// configured model name when the config is first needed.
func New(root string, reg *model.Registry) *Workspace {
	return &Workspace{root: root, registry: reg}
}

// Create configures a fresh workspace at root for kind k and persists it
// immediately.
func Create(root string, k model.Kind, config conf.Record, reg *model.Registry) (*Workspace, error) {
	w := New(root, reg)
	w.doc = conf.NewDocument(k.Name(), config)
	if err := w.Save(); err != nil {
		return nil, err
	}
	return w, nil
}

// Root returns the workspace directory as given.
func (w *Workspace) Root() string { return w.root }

// ConfigPath returns the configuration file path without touching disk.
func (w *Workspace) ConfigPath() string { return filepath.Join(w.root, conf.FileName) }

// Path ensures the workspace directory exists and returns it. Repeated
// calls are no-ops.
func (w *Workspace) Path() (string, error) { return w.ensure(w.root) }

// LogPath ensures and returns the log directory.
func (w *Workspace) LogPath() (string, error) { return w.ensure(filepath.Join(w.root, "log")) }

// SnapshotPath ensures and returns the snapshot directory.
func (w *Workspace) SnapshotPath() (string, error) { return w.ensure(filepath.Join(w.root, "snapshot")) }

// ResultPath ensures and returns the result directory.
func (w *Workspace) ResultPath() (string, error) { return w.ensure(filepath.Join(w.root, "result")) }

func (w *Workspace) ensure(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

func (w *Workspace) load() (*conf.Document, error) {
	if w.doc != nil {
		return w.doc, nil
	}
	doc, err := conf.Load(w.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) || errors.Is(err, conf.ErrIncomplete) {
			return nil, &NotConfiguredError{Path: w.root}
		}
		return nil, err
	}
	slog.Debug("loaded workspace configuration", "path", w.ConfigPath(), "model", doc.ModelName)
	w.doc = doc
	return doc, nil
}

// ModelName returns the configured model kind name.
func (w *Workspace) ModelName() (string, error) {
	doc, err := w.load()
	if err != nil {
		return "", err
	}
	return doc.ModelName, nil
}

// Config returns the configured model record.
func (w *Workspace) Config() (conf.Record, error) {
	doc, err := w.load()
	if err != nil {
		return conf.Record{}, err
	}
	return doc.Config, nil
}

// Kind resolves the configured model kind against the registry.
func (w *Workspace) Kind() (model.Kind, error) {
	doc, err := w.load()
	if err != nil {
		return nil, err
	}
	k, ok := w.registry.Lookup(doc.ModelName)
	if !ok {
		return nil, fmt.Errorf("model kind %q is not registered", doc.ModelName)
	}
	return k, nil
}

// BuildModel constructs the configured model instance from the saved
// record.
func (w *Workspace) BuildModel() (model.Instance, error) {
	doc, err := w.load()
	if err != nil {
		return nil, err
	}
	k, ok := w.registry.Lookup(doc.ModelName)
	if !ok {
		return nil, fmt.Errorf("model kind %q is not registered", doc.ModelName)
	}
	inst, err := k.New(doc.Config)
	if err != nil {
		return nil, fmt.Errorf("building %s from %s: %w", doc.ModelName, w.ConfigPath(), err)
	}
	return inst, nil
}

// SetupLike points the workspace at the model of inst, in memory only.
// Saved command arguments survive when the workspace already had a
// configuration. Call Save to persist.
func (w *Workspace) SetupLike(inst model.Instance) {
	if w.doc == nil {
		if doc, err := conf.Load(w.ConfigPath()); err == nil {
			w.doc = doc
		}
	}
	if w.doc == nil {
		w.doc = conf.NewDocument(inst.Kind().Name(), inst.Config())
		return
	}
	w.doc.ModelName = inst.Kind().Name()
	w.doc.Config = inst.Config()
}

// Save writes the configuration document, creating the workspace
// directory if needed.
func (w *Workspace) Save() error {
	if w.doc == nil {
		return fmt.Errorf("workspace %s: nothing to save", w.root)
	}
	if _, err := w.Path(); err != nil {
		return err
	}
	return w.doc.Save(w.ConfigPath())
}

// CommandArgs returns the saved arguments for a command, or an empty
// record when none were saved yet.
func (w *Workspace) CommandArgs(name string) (conf.Record, error) {
	doc, err := w.load()
	if err != nil {
		return conf.Record{}, err
	}
	rec, _ := doc.Section(name)
	return rec, nil
}

// SetCommandArgs stores the arguments for a command in memory. Call Save
// to persist.
func (w *Workspace) SetCommandArgs(name string, args conf.Record) error {
	doc, err := w.load()
	if err != nil {
		return err
	}
	doc.SetSection(name, args)
	return nil
}
