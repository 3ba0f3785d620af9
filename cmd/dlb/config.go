package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/workspace"
	"golang.org/x/term"
)

func newConfigCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [model]",
		Short: "Choose and configure the workspace model",
		Long: `Configure the workspace model. Each registered model is a subcommand
carrying the model's own flags; run without arguments for an interactive
picker that configures the chosen model with defaults.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigPicker(cmd, reg, args)
		},
	}
	for _, k := range reg.Kinds() {
		cmd.AddCommand(newConfigKindCmd(reg, k))
	}
	return cmd
}

// newConfigKindCmd generates the per-model subcommand. The model's
// declared arguments become ordinary flags, so the framework handles
// --help and value errors, while required and leftover checks stay with
// the model package.
func newConfigKindCmd(reg *model.Registry, k model.Kind) *cobra.Command {
	sub := &cobra.Command{
		Use:   strings.ToLower(k.Name()),
		Short: k.Doc(),
	}
	fa := model.BindFlags(sub.Flags())
	k.DeclareArguments(fa)
	sub.RunE = func(cmd *cobra.Command, _ []string) error {
		inst, err := model.FromFlags(k, fa)
		if err != nil {
			return err
		}
		return saveConfigured(cmd, openWorkspace(cmd, reg), inst)
	}
	return sub
}

// runConfigPicker handles `dlb config` without a model subcommand.
func runConfigPicker(cmd *cobra.Command, reg *model.Registry, args []string) error {
	if len(args) > 0 {
		return &usageError{cmd: cmd, err: fmt.Errorf("unknown model %q (choose from %s)",
			args[0], strings.Join(reg.Names(), ", "))}
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &usageError{cmd: cmd, err: errors.New("no model specified; picking one interactively needs a TTY")}
	}

	k, err := pickKind(reg)
	if err != nil {
		return err
	}
	ws := openWorkspace(cmd, reg)
	if name, err := ws.ModelName(); err == nil {
		overwrite, err := promptConfirm(fmt.Sprintf("Workspace %s already configures %s. Overwrite?", ws.Root(), name))
		if err != nil {
			return err
		}
		if !overwrite {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Keeping the existing configuration.")
			return nil
		}
	}
	inst, err := model.Build(k, nil)
	if err != nil {
		return fmt.Errorf("configuring %s with defaults: %w", k.Name(), err)
	}
	return saveConfigured(cmd, ws, inst)
}

// saveConfigured repoints the workspace at inst and persists it. The
// confirmation goes to stderr like the rest of the status chatter, keeping
// stdout for command output.
func saveConfigured(cmd *cobra.Command, ws *workspace.Workspace, inst model.Instance) error {
	ws.SetupLike(inst)
	if err := ws.Save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "In [%s]: configured %s with %s\n",
		ws.Root(), inst.Kind().Name(), inst.Config())
	return nil
}
