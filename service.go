package pdfstitch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/writer"

	"github.com/alnah/go-pdfstitch/internal/config"
	"github.com/alnah/go-pdfstitch/internal/fileutil"
)

// Service orchestrates the merge pipeline: resolve the output path, load the
// configuration, flatten it to file entries, convert and transform each
// file's pages, and write the assembled document once at the end.
type Service struct {
	logger    *slog.Logger
	conflicts ConflictPolicy
	source    PageSource
	expander  *Expander
	resolver  *Resolver
	engine    *Engine
}

// New creates a Service with default collaborators. By default it logs to
// stderr at info level and prompts on stdin when the output path is taken.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if s.conflicts == nil {
		s.conflicts = &PromptPolicy{In: os.Stdin, Out: os.Stderr}
	}
	if s.source == nil {
		s.source = &codecSource{logger: s.logger}
	}

	s.expander = NewExpander(s.logger)
	s.resolver = NewResolver(s.logger, s.expander)
	s.engine = NewEngine(s.logger)
	return s
}

// Process runs the full pipeline and returns the path the document was
// written to. Per-file failures are logged and skipped; only fatal
// conditions return an error: configuration errors, a user abort, or an
// output write failure.
func (s *Service) Process(ctx context.Context, configPath, outputPath string) (string, error) {
	if configPath == "" {
		return "", ErrNoConfigPath
	}
	if outputPath == "" {
		return "", ErrNoOutputPath
	}

	outPath, err := s.resolveOutputPath(ctx, outputPath)
	if err != nil {
		return "", err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	s.logger.Info("loaded configuration", "path", configPath)

	entries := s.resolver.Resolve(cfg.Files, nil)
	s.logger.Info("resolved input files", "count", len(entries))

	b := builder.NewBuilder()
	for _, entry := range entries {
		s.logger.Info("processing file", "path", entry.Path, "options", entry.Options)

		pages, err := s.source.Pages(ctx, entry.Path)
		if err != nil {
			s.logger.Error("failed to convert file, skipping", "path", entry.Path, "error", err)
			continue
		}
		for _, page := range pages {
			b.AddPage(s.engine.Apply(page, entry.Options))
		}
	}

	if err := s.write(ctx, b, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// resolveOutputPath applies the conflict policy when outputPath exists.
func (s *Service) resolveOutputPath(ctx context.Context, outputPath string) (string, error) {
	if !fileutil.FileExists(outputPath) {
		return outputPath, nil
	}

	s.logger.Warn("output file already exists", "path", outputPath)
	suggested := fileutil.NextAvailableName(outputPath)

	decision, err := s.conflicts.Resolve(ctx, outputPath, suggested)
	if err != nil {
		return "", err
	}
	switch decision {
	case Overwrite:
		s.logger.Info("overwriting existing output", "path", outputPath)
		return outputPath, nil
	case Rename:
		s.logger.Info("using alternative output name", "path", suggested)
		return suggested, nil
	default:
		s.logger.Info("user chose to stop processing")
		return "", ErrAborted
	}
}

// write serializes the assembled document to path.
func (s *Service) write(ctx context.Context, b builder.PDFBuilder, path string) error {
	doc, err := b.Build()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	cfg := writer.Config{Version: writer.PDF17, Compression: 9}
	if err := writer.NewWriter().Write(ctx, doc, f, cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	s.logger.Info("wrote output PDF", "path", path, "pages", len(doc.Pages))
	return nil
}
