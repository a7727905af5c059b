package pdfstitch

import "log/slog"

// FileEntry is one flattened unit of work: a concrete file path together
// with the transformation options in effect for it. Entries are immutable
// once produced; Options keeps first-seen order and holds no duplicates.
type FileEntry struct {
	Path    string
	Options []string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used by all pipeline components.
// Defaults to a text handler on stderr at info level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithConflictPolicy sets the policy consulted when the output path already
// exists. Defaults to an interactive prompt on stdin/stderr.
func WithConflictPolicy(policy ConflictPolicy) Option {
	return func(s *Service) {
		s.conflicts = policy
	}
}

// WithPageSource replaces the codec used to load a file's pages.
// Mainly useful for tests.
func WithPageSource(source PageSource) Option {
	return func(s *Service) {
		s.source = source
	}
}
