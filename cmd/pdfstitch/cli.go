package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	pdfstitch "github.com/alnah/go-pdfstitch"
)

// Sentinel errors for CLI operations.
var ErrInvalidArgs = errors.New("usage: pdfstitch <config.json> <output.pdf> [flags]")

// CLI argument positions after flag parsing.
const (
	requiredArgs       = 2
	configPathArgIndex = 0
	outputPathArgIndex = 1
)

// newLogger builds the run logger. It never touches the global slog logger,
// so tests can capture output by passing their own writer.
func newLogger(debug, quiet bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run wires the service and processes the merge.
func run(ctx context.Context, args []string, flags *cliFlags, stdout io.Writer) error {
	if len(args) < requiredArgs {
		return ErrInvalidArgs
	}
	configPath := args[configPathArgIndex]
	outputPath := args[outputPathArgIndex]

	logger := newLogger(flags.debug, flags.quiet, os.Stderr)

	opts := []pdfstitch.Option{pdfstitch.WithLogger(logger)}
	if flags.overwrite {
		opts = append(opts, pdfstitch.WithConflictPolicy(pdfstitch.OverwritePolicy{}))
	}
	service := pdfstitch.New(opts...)

	written, err := service.Process(ctx, configPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s\n", written)
	return nil
}
