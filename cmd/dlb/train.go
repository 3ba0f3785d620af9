package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/ui"
	"github.com/yxonic/dl-boilerplate/internal/workspace"
	"gopkg.in/yaml.v3"
)

func newTrainCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the configured model",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, reg)
		},
	}
	cmd.Flags().IntP("epochs", "N", 10, "Number of training epochs")
	return cmd
}

func runTrain(cmd *cobra.Command, reg *model.Registry) error {
	ws := openWorkspace(cmd, reg)
	defer func() { _ = ws.Close() }()

	inst, err := ws.BuildModel()
	if err != nil {
		return err
	}
	epochs, _ := cmd.Flags().GetInt("epochs")
	args, err := commandArgs(cmd, ws, "train", map[string]any{"epochs": epochs})
	if err != nil {
		return err
	}
	if saved, ok := args.Int("epochs"); ok {
		epochs = saved
	}

	lg, err := ws.Logger("train")
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	lg.Info("train started", "run", runID, "model", inst.Config().String(), "args", args.String())

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Training %s in %s (run %s)\n", inst.Kind().Name(), ws.Root(), runID)
	progress := ui.NewProgress(out, epochs)
	for i := 1; i <= epochs; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		progress.Step(fmt.Sprintf("epoch %d", i))
	}

	snapshot, err := writeSnapshot(ws, runID, epochs, inst)
	if err != nil {
		return err
	}
	lg.Info("train finished", "run", runID, "epochs", epochs, "snapshot", filepath.Base(snapshot))
	_, _ = fmt.Fprintf(out, "Snapshot written: %s\n", snapshot)
	return nil
}

// writeSnapshot records the run outcome under the snapshot directory and
// returns the file path.
func writeSnapshot(ws *workspace.Workspace, runID string, epochs int, inst model.Instance) (string, error) {
	dir, err := ws.SnapshotPath()
	if err != nil {
		return "", err
	}
	state := map[string]any{
		"run":    runID,
		"epochs": epochs,
		"model":  inst.Config().Map(),
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	path := filepath.Join(dir, runID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // snapshot lives inside the workspace
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}
