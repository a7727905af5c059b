package pdfstitch

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/alnah/go-pdfstitch/internal/config"
)

// Resolver flattens a configuration's files tree into an ordered list of
// (path, options) pairs ready for conversion.
type Resolver struct {
	logger   *slog.Logger
	expander *Expander
}

// NewResolver creates a Resolver using expander for path expansion.
func NewResolver(logger *slog.Logger, expander *Expander) *Resolver {
	return &Resolver{logger: logger, expander: expander}
}

// Resolve expands entries in declaration order, so output order follows
// config order; filesystem order only breaks ties within a single path
// expansion. Plain path entries expand non-recursively and carry inherited
// unchanged. Group entries merge their options into inherited, expand
// recursively when the merged set contains "recursive", and globally sort
// their own files list before expanding it. Entries of any other shape are
// skipped.
func (r *Resolver) Resolve(entries []config.Entry, inherited []string) []FileEntry {
	var resolved []FileEntry

	for i, entry := range entries {
		switch entry.Kind {
		case config.EntryPath:
			for _, path := range r.expander.Expand(entry.Path, false) {
				resolved = append(resolved, FileEntry{Path: path, Options: inherited})
			}

		case config.EntryGroup:
			options := mergeOptions(inherited, entry.Options)
			recursive := slices.Contains(options, OptionRecursive)
			r.logger.Debug("resolving group entry", "index", i, "options", options)

			// The group's own list is sorted as one flat list of strings,
			// unlike the per-directory ordering inside recursive expansion.
			paths := append([]string(nil), entry.Files...)
			sort.Strings(paths)
			for _, path := range paths {
				for _, file := range r.expander.Expand(path, recursive) {
					resolved = append(resolved, FileEntry{Path: file, Options: options})
				}
			}

		default:
			r.logger.Debug("skipping malformed files entry", "index", i)
		}
	}

	return resolved
}

// mergeOptions appends to parent the child options not already present,
// preserving the relative order of both lists. The result is duplicate-free
// whenever parent is.
func mergeOptions(parent, child []string) []string {
	merged := append([]string(nil), parent...)
	for _, option := range child {
		if !slices.Contains(merged, option) {
			merged = append(merged, option)
		}
	}
	return merged
}
