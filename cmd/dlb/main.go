package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/models"
	"github.com/yxonic/dl-boilerplate/internal/ui"
	"github.com/yxonic/dl-boilerplate/internal/workspace"
)

// Set via -ldflags at build time.
var version = "dev"

const (
	exitOK    = 0
	exitErr   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(models.DefaultRegistry())
	err := rootCmd.ExecuteContext(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return exitStatus(err, os.Stderr)
}

// exitStatus maps an execution error to the process exit code, printing
// the user-facing report on the way. Interrupts exit clean, bad
// invocations exit 2, everything else exits 1.
func exitStatus(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		ui.Warnf(stderr, "cancelled by user")
		return exitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		ui.Errorf(stderr, "%v", uerr.err)
		_, _ = fmt.Fprint(stderr, uerr.cmd.UsageString())
		return exitUsage
	}
	var perr *model.ParseError
	if errors.As(err, &perr) {
		ui.Errorf(stderr, "%v", perr)
		_, _ = fmt.Fprintf(stderr, "run 'dlb config %s --help' for the accepted arguments\n", strings.ToLower(perr.Kind))
		return exitUsage
	}
	var ncerr *workspace.NotConfiguredError
	if errors.As(err, &ncerr) {
		ui.Errorf(stderr, "%v", ncerr)
		_, _ = fmt.Fprintln(stderr, "run 'dlb config <model>' first")
		return exitErr
	}

	slog.Debug("command failed", "error", err)
	ui.Errorf(stderr, "%v", err)
	return exitErr
}
