package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the pdfstitch command.
type cliFlags struct {
	debug     bool
	quiet     bool
	overwrite bool
	version   bool
}

// parseFlags parses the command line and returns the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("pdfstitch", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.overwrite, "overwrite", "y", false, "overwrite an existing output file without asking")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// printUsage writes the command usage text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageText)
}

const usageText = `usage: pdfstitch <config.json> <output.pdf> [flags]

Merge the PDFs and images listed in a JSON configuration into one PDF.

Flags:
      --debug       enable debug logging
  -q, --quiet       only show errors
  -y, --overwrite   overwrite an existing output file without asking
      --version     print version and exit`
