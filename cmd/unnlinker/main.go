package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/objlink/linker"
	"github.com/wippyai/objlink/object"
	"github.com/wippyai/objlink/report"
)

const banner = "This is the UnnLinker"

func main() {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	object.SetLogger(log)
	linker.SetLogger(log)

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if err := newRootCmd(os.Stdout, os.Stderr, styled).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger logs to stderr. Per-section name problems are already part of
// the report, so only errors are emitted.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func newRootCmd(stdout, stderr io.Writer, styled bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unnlinker <object-file>",
		Short: "Print the sections of an ELF64 object file",
		Long: `unnlinker reads one ELF64 object file, validates its header and
section table, and prints every section with its resolved name.`,
		Example: "  unnlinker main.o",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors get cobra's error and usage output; decode
			// failures print their own single line.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return run(args[0], stdout, stderr, styled)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	return cmd
}

func run(path string, stdout, stderr io.Writer, styled bool) error {
	fmt.Fprintln(stdout, banner)

	rep, err := object.Decode(path)
	if err != nil {
		if perr := report.NewPrinter(stderr, styled).Failure(err); perr != nil {
			linker.Logger().Error("write failure", zap.Error(perr))
		}
		return err
	}

	if err := report.NewPrinter(stdout, styled).Report(rep); err != nil {
		linker.Logger().Error("write report", zap.String("path", path), zap.Error(err))
		return err
	}

	// The symbol phase consumes the report; it yields nothing yet.
	linker.GenerateSymbols(rep)
	return nil
}
