package main

import (
	"errors"
	"os"

	pdfstitch "github.com/alnah/go-pdfstitch"
	"github.com/alnah/go-pdfstitch/internal/config"
)

// Exit codes for the pdfstitch CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful merge
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or configuration
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitAborted = 4 // User chose to stop at the conflict prompt
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, pdfstitch.ErrAborted) {
		return ExitAborted
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdfstitch.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrMissingFiles) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, pdfstitch.ErrNoConfigPath) ||
		errors.Is(err, pdfstitch.ErrNoOutputPath) {
		return ExitUsage
	}

	return ExitGeneral
}
