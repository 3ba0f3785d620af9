package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/workspace"
)

func newRootCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dlb",
		Short:         "Workspace scaffold for deep learning experiments",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return &usageError{cmd: cmd, err: fmt.Errorf("unknown command %q", args[0])}
		},
	}

	cmd.PersistentFlags().StringP("workspace", "w", "ws/test", "Workspace directory")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{cmd: c, err: err}
	})

	cmd.AddCommand(
		newConfigCmd(reg),
		newTrainCmd(reg),
		newTestCmd(reg),
		newCleanCmd(reg),
		newModelsCmd(reg),
	)

	return cmd
}

// usageError marks a failure in how the command was invoked rather than in
// what it did. main prints the usage text and exits 2.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// noArgs rejects positional arguments as a usage failure.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{cmd: cmd, err: fmt.Errorf("unexpected argument %q", args[0])}
	}
	return nil
}

// setupLogging configures the process logger. Debug records stay off
// unless asked for; workspace file loggers are independent of this.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// openWorkspace resolves the persistent --workspace flag into a handle.
func openWorkspace(cmd *cobra.Command, reg *model.Registry) *workspace.Workspace {
	root, _ := cmd.Flags().GetString("workspace")
	return workspace.New(root, reg)
}

// commandArgs merges a command's declared flag values with the ones saved
// in the workspace and persists the result. Saved values win over declared
// defaults; flags set on this invocation win over saved values, and become
// the saved values for the next run.
func commandArgs(cmd *cobra.Command, ws *workspace.Workspace, name string, declared map[string]any) (conf.Record, error) {
	saved, err := ws.CommandArgs(name)
	if err != nil {
		return conf.Record{}, err
	}
	explicit := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = true })

	merged := make(map[string]any, len(declared)+saved.Len())
	for k, v := range declared {
		merged[k] = v
	}
	for _, f := range saved.Fields() {
		if !explicit[f.Key] {
			merged[f.Key] = f.Value
		}
	}
	rec := conf.New(merged)
	if err := ws.SetCommandArgs(name, rec); err != nil {
		return conf.Record{}, err
	}
	if err := ws.Save(); err != nil {
		return conf.Record{}, err
	}
	return rec, nil
}
