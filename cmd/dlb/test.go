package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/workspace"
	"gopkg.in/yaml.v3"
)

func newTestCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Evaluate the configured model against a snapshot",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(cmd, reg)
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "Snapshot file to evaluate (defaults to the latest)")
	return cmd
}

func runTest(cmd *cobra.Command, reg *model.Registry) error {
	ws := openWorkspace(cmd, reg)
	defer func() { _ = ws.Close() }()

	inst, err := ws.BuildModel()
	if err != nil {
		return err
	}
	flagSnapshot, _ := cmd.Flags().GetString("snapshot")
	args, err := commandArgs(cmd, ws, "test", map[string]any{"snapshot": flagSnapshot})
	if err != nil {
		return err
	}

	snapDir, err := ws.SnapshotPath()
	if err != nil {
		return err
	}
	snapshot, _ := args.Str("snapshot")
	if snapshot == "" {
		snapshot, err = latestSnapshot(snapDir)
		if err != nil {
			return err
		}
	} else if _, err := os.Stat(filepath.Join(snapDir, snapshot)); err != nil {
		return fmt.Errorf("snapshot %q not found in %s", snapshot, snapDir)
	}

	lg, err := ws.Logger("test")
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	lg.Info("test started", "run", runID, "snapshot", snapshot, "model", inst.Config().String())

	result, err := writeResult(ws, runID, snapshot, inst)
	if err != nil {
		return err
	}
	lg.Info("test finished", "run", runID, "result", filepath.Base(result))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Testing %s in %s against %s\nResult written: %s\n",
		inst.Kind().Name(), ws.Root(), snapshot, result)
	return nil
}

// latestSnapshot picks the most recently written snapshot file.
func latestSnapshot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("listing snapshots: %w", err)
	}
	var best string
	var bestTime time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best, bestTime = e.Name(), info.ModTime()
		}
	}
	if best == "" {
		return "", errors.New("no snapshots found; run 'dlb train' first")
	}
	return best, nil
}

// writeResult records the evaluation outcome under the result directory
// and returns the file path.
func writeResult(ws *workspace.Workspace, runID, snapshot string, inst model.Instance) (string, error) {
	dir, err := ws.ResultPath()
	if err != nil {
		return "", err
	}
	out := map[string]any{
		"run":      runID,
		"snapshot": snapshot,
		"model":    inst.Config().Map(),
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	path := filepath.Join(dir, runID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // result lives inside the workspace
		return "", fmt.Errorf("writing result: %w", err)
	}
	return path, nil
}
