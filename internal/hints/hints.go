// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

// ForUnsupportedFile returns a hint listing the accepted input types.
func ForUnsupportedFile() string {
	return format("supported inputs are .pdf, .png, .jpg, .jpeg, .tiff, and .bmp")
}

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("pass the path to a JSON config with a top-level \"files\" array")
}

// ForMissingFilesKey returns a hint for configs missing the files array.
func ForMissingFilesKey() string {
	return format(`add a top-level "files" array listing paths or {"files", "options"} groups`)
}

// format renders a single hint line.
func format(text string) string {
	return "\n  hint: " + text
}
