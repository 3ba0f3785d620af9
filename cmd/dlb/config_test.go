package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/models"
)

// runCLI executes the root command with args, returning stdout, stderr and
// the execution error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(models.DefaultRegistry())
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// configureWorkspace sets up a workspace through the real config command.
func configureWorkspace(t *testing.T, wsDir string, args ...string) {
	t.Helper()
	root := newRootCmd(models.DefaultRegistry())
	root.SetArgs(append([]string{"-w", wsDir, "config"}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatalf("config failed: %v", err)
	}
}

func TestRunConfig_simple(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")

	_, errOut, err := runCLI(t, "-w", wsDir, "config", "simple", "--foo", "5")
	if err != nil {
		t.Fatalf("config simple failed: %v", err)
	}
	if !strings.Contains(errOut, "configured Simple with Config(foo=5)") {
		t.Errorf("missing confirmation on stderr: %q", errOut)
	}

	doc, err := conf.Load(filepath.Join(wsDir, conf.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if doc.ModelName != "Simple" {
		t.Errorf("model_name = %q, want %q", doc.ModelName, "Simple")
	}
	if foo, _ := doc.Config.Int("foo"); foo != 5 {
		t.Errorf("foo = %d, want 5", foo)
	}
}

func TestRunConfig_trainerNested(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")

	_, _, err := runCLI(t, "-w", wsDir, "config", "trainer", "--l1.foo", "3", "--l2.foo", "4")
	if err != nil {
		t.Fatalf("config trainer failed: %v", err)
	}

	doc, err := conf.Load(filepath.Join(wsDir, conf.FileName))
	if err != nil {
		t.Fatal(err)
	}
	l1, ok := doc.Config.Sub("l1")
	if !ok {
		t.Fatalf("config has no l1 section: %s", doc.Config)
	}
	if foo, _ := l1.Int("foo"); foo != 3 {
		t.Errorf("l1.foo = %d, want 3", foo)
	}
	l2, _ := doc.Config.Sub("l2")
	if foo, _ := l2.Int("foo"); foo != 4 {
		t.Errorf("l2.foo = %d, want 4", foo)
	}
	if lr, _ := doc.Config.Float("lr"); lr != 0.1 {
		t.Errorf("lr = %v, want default 0.1", lr)
	}
}

func TestRunConfig_badValue(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")

	_, _, err := runCLI(t, "-w", wsDir, "config", "simple", "--foo", "abc")
	if err == nil {
		t.Fatal("expected error for a bad flag value")
	}
	var uerr *usageError
	if !errors.As(err, &uerr) {
		t.Errorf("expected usage error, got %T: %v", err, err)
	}
	var buf bytes.Buffer
	if code := exitStatus(err, &buf); code != exitUsage {
		t.Errorf("exit code = %d, want %d", code, exitUsage)
	}
}

func TestRunConfig_unknownModel(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")

	_, _, err := runCLI(t, "-w", wsDir, "config", "bogus")
	if err == nil {
		t.Fatal("expected error for an unknown model")
	}
	if !strings.Contains(err.Error(), `unknown model "bogus"`) {
		t.Errorf("unexpected message: %v", err)
	}
	var uerr *usageError
	if !errors.As(err, &uerr) {
		t.Errorf("expected usage error, got %T", err)
	}
}

func TestRunConfig_noArgsWithoutTTY(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")

	// Test processes have no TTY on stdin, so the picker must refuse.
	_, _, err := runCLI(t, "-w", wsDir, "config")
	if err == nil {
		t.Fatal("expected error without a model or TTY")
	}
	var uerr *usageError
	if !errors.As(err, &uerr) {
		t.Errorf("expected usage error, got %T: %v", err, err)
	}
}

func TestRunConfig_reconfigureKeepsCommandArgs(t *testing.T) {
	wsDir := filepath.Join(t.TempDir(), "ws")
	configureWorkspace(t, wsDir, "simple", "--foo", "5")

	if _, _, err := runCLI(t, "-w", wsDir, "train", "-N", "3"); err != nil {
		t.Fatalf("train failed: %v", err)
	}

	// Switching models keeps the saved train arguments.
	configureWorkspace(t, wsDir, "trainer", "--l1.foo", "1")

	doc, err := conf.Load(filepath.Join(wsDir, conf.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if doc.ModelName != "Trainer" {
		t.Errorf("model_name = %q, want %q", doc.ModelName, "Trainer")
	}
	train, ok := doc.Section("train")
	if !ok {
		t.Fatal("train section lost on reconfigure")
	}
	if epochs, _ := train.Int("epochs"); epochs != 3 {
		t.Errorf("train.epochs = %d, want 3", epochs)
	}
}

func TestKindValidator(t *testing.T) {
	validate := kindValidator(models.DefaultRegistry())

	if err := validate("simple"); err != nil {
		t.Errorf("simple should validate: %v", err)
	}
	if err := validate(" Trainer "); err != nil {
		t.Errorf("padded name should validate: %v", err)
	}
	if err := validate(""); err == nil {
		t.Error("empty name should fail")
	}
	if err := validate("bogus"); err == nil {
		t.Error("unknown name should fail")
	}
}
