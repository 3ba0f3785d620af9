package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
)

func newCleanCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove snapshots, or the whole workspace with --all",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd, reg)
		},
	}
	cmd.Flags().Bool("all", false, "Remove the entire workspace directory")
	return cmd
}

func runClean(cmd *cobra.Command, reg *model.Registry) error {
	ws := openWorkspace(cmd, reg)

	abs, err := filepath.Abs(ws.Root())
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if abs == string(filepath.Separator) {
		return fmt.Errorf("refusing to clean filesystem root: %s", abs)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("workspace %s does not exist", ws.Root())
	}

	all, _ := cmd.Flags().GetBool("all")
	if all {
		if _, err := os.Stat(ws.ConfigPath()); err != nil {
			return fmt.Errorf("refusing to remove %s: no %s found (not a workspace directory)", abs, conf.FileName)
		}
		if err := os.RemoveAll(abs); err != nil {
			return fmt.Errorf("removing workspace: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workspace removed: %s\n", abs)
		return nil
	}

	snap, err := ws.SnapshotPath()
	if err != nil {
		return err
	}
	if err := os.RemoveAll(snap); err != nil {
		return fmt.Errorf("removing snapshots: %w", err)
	}
	// Recreate, so the next run starts from the usual layout.
	if _, err := ws.SnapshotPath(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Snapshots removed: %s\n", snap)
	return nil
}
