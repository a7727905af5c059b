package pdfstitch

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoConfigPath    = errors.New("config path cannot be empty")
	ErrNoOutputPath    = errors.New("output path cannot be empty")
	ErrAborted         = errors.New("processing stopped at output conflict prompt")
	ErrWriteOutput     = errors.New("failed to write output PDF")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrPDFParse        = errors.New("failed to read PDF")
	ErrImageDecode     = errors.New("failed to decode image")
)
