package pdfstitch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Decision is the outcome of an output-path conflict.
type Decision int

const (
	Overwrite Decision = iota // reuse the existing path
	Rename                    // write to the suggested alternative instead
	Abort                     // stop processing
)

// ConflictPolicy decides what to do when the output path already exists.
// suggested is the first free name_N.ext alternative for path.
type ConflictPolicy interface {
	Resolve(ctx context.Context, path, suggested string) (Decision, error)
}

// OverwritePolicy overwrites without asking.
type OverwritePolicy struct{}

func (OverwritePolicy) Resolve(context.Context, string, string) (Decision, error) {
	return Overwrite, nil
}

// PromptPolicy asks on an input/output stream pair, re-prompting until one of
// the numbered choices is entered. End of input and context cancellation both
// count as abort, so an interrupt during the prompt stops the run cleanly.
type PromptPolicy struct {
	In  io.Reader
	Out io.Writer
}

func (p *PromptPolicy) Resolve(ctx context.Context, path, suggested string) (Decision, error) {
	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		scanner := bufio.NewScanner(p.In)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(done)
	}()

	for {
		fmt.Fprintf(p.Out, "\nOutput file already exists: %s\n", path)
		fmt.Fprintln(p.Out, "1. Overwrite existing file")
		fmt.Fprintf(p.Out, "2. Use alternative filename: %s\n", suggested)
		fmt.Fprintln(p.Out, "3. Stop processing")
		fmt.Fprint(p.Out, "Enter your choice (1/2/3): ")

		select {
		case <-ctx.Done():
			return Abort, nil
		case <-done:
			return Abort, nil
		case line := <-lines:
			switch line {
			case "1":
				return Overwrite, nil
			case "2":
				return Rename, nil
			case "3":
				return Abort, nil
			}
			fmt.Fprintln(p.Out, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}
