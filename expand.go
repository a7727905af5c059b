package pdfstitch

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Expander resolves file and directory paths into ordered lists of concrete
// file paths.
type Expander struct {
	logger *slog.Logger
}

// NewExpander creates an Expander that reports skipped paths to logger.
func NewExpander(logger *slog.Logger) *Expander {
	return &Expander{logger: logger}
}

// Expand resolves path into an ordered list of files. A missing path yields
// an empty list and a warning. A regular file yields itself. A directory
// yields the regular files directly inside it, sorted by name. When recursive
// is true the files of every directory beneath it are included as well.
func (x *Expander) Expand(path string, recursive bool) []string {
	info, err := os.Stat(path)
	if err != nil {
		x.logger.Warn("path does not exist, skipping", "path", path)
		return nil
	}

	if !info.IsDir() {
		return []string{path}
	}

	x.logger.Debug("expanding directory", "path", path, "recursive", recursive)
	if recursive {
		return x.walkFiles(path)
	}
	return x.listFiles(path)
}

// listFiles returns the files directly inside dir. os.ReadDir sorts entries
// by name, which matches lexicographic order of the joined paths.
func (x *Expander) listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		x.logger.Warn("cannot read directory, skipping", "path", dir, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files
}

// walkFiles returns every file under root, grouped directory by directory:
// directories are visited in lexicographic path order and each contributes
// its own sorted file listing. Files in a parent directory therefore come
// before files in its subdirectories; the result is not one global sort of
// all paths.
func (x *Expander) walkFiles(root string) []string {
	perDir := make(map[string][]string)
	var dirs []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			x.logger.Warn("cannot read path, skipping", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		dir := filepath.Dir(path)
		perDir[dir] = append(perDir[dir], path)
		return nil
	})

	sort.Strings(dirs)

	var files []string
	for _, dir := range dirs {
		names := perDir[dir]
		sort.Strings(names)
		files = append(files, names...)
	}
	x.logger.Debug("expanded directory", "path", root, "files", len(files))
	return files
}
