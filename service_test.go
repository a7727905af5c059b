package pdfstitch_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/wudi/pdfkit/ir/semantic"

	pdfstitch "github.com/alnah/go-pdfstitch"
	"github.com/alnah/go-pdfstitch/internal/config"
)

// fakeSource records the paths it was asked for and serves one page per
// path, or an error for paths in failing.
type fakeSource struct {
	requested []string
	failing   map[string]bool
}

func (f *fakeSource) Pages(_ context.Context, path string) ([]*semantic.Page, error) {
	f.requested = append(f.requested, path)
	if f.failing[path] {
		return nil, fmt.Errorf("%w: %s", pdfstitch.ErrPDFParse, path)
	}
	return []*semantic.Page{
		{MediaBox: semantic.Rectangle{URX: 612, URY: 792}},
	}, nil
}

// decisionPolicy always answers with a fixed decision.
type decisionPolicy struct{ decision pdfstitch.Decision }

func (p decisionPolicy) Resolve(context.Context, string, string) (pdfstitch.Decision, error) {
	return p.decision, nil
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestProcess - Pipeline orchestration
// ---------------------------------------------------------------------------

func TestProcess_EmptyPaths(t *testing.T) {
	t.Parallel()

	s := pdfstitch.New(pdfstitch.WithLogger(discardLogger()))

	if _, err := s.Process(context.Background(), "", "out.pdf"); !errors.Is(err, pdfstitch.ErrNoConfigPath) {
		t.Errorf("Process(no config) error = %v, want ErrNoConfigPath", err)
	}
	if _, err := s.Process(context.Background(), "config.json", ""); !errors.Is(err, pdfstitch.ErrNoOutputPath) {
		t.Errorf("Process(no output) error = %v, want ErrNoOutputPath", err)
	}
}

func TestProcess_ConfigNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := pdfstitch.New(pdfstitch.WithLogger(discardLogger()))

	_, err := s.Process(context.Background(), filepath.Join(dir, "gone.json"), filepath.Join(dir, "out.pdf"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Process error = %v, want ErrConfigNotFound", err)
	}
}

func TestProcess_ConflictResolvedBeforeConfigLoad(t *testing.T) {
	t.Parallel()

	// The output conflict is settled first, so an abort returns before the
	// config file is even opened. A missing config must not mask the abort.
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(outPath, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := pdfstitch.New(
		pdfstitch.WithLogger(discardLogger()),
		pdfstitch.WithConflictPolicy(decisionPolicy{decision: pdfstitch.Abort}),
	)

	_, err := s.Process(context.Background(), filepath.Join(dir, "gone.json"), outPath)
	if !errors.Is(err, pdfstitch.ErrAborted) {
		t.Errorf("Process error = %v, want ErrAborted", err)
	}
}

func TestProcess_MergesInConfigOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	second := touchFile(t, filepath.Join(dir, "a-second.pdf"))
	first := touchFile(t, filepath.Join(dir, "z-first.pdf"))
	configPath := writeConfig(t, dir, fmt.Sprintf(`{"files": [%q, %q]}`, first, second))

	source := &fakeSource{}
	s := pdfstitch.New(
		pdfstitch.WithLogger(discardLogger()),
		pdfstitch.WithPageSource(source),
	)

	outPath := filepath.Join(dir, "out.pdf")
	written, err := s.Process(context.Background(), configPath, outPath)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if written != outPath {
		t.Errorf("Process() wrote to %q, want %q", written, outPath)
	}

	// Declaration order wins over filesystem name order.
	want := []string{first, second}
	if len(source.requested) != 2 || source.requested[0] != want[0] || source.requested[1] != want[1] {
		t.Errorf("conversion order = %v, want %v", source.requested, want)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestProcess_SkipsFailingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := touchFile(t, filepath.Join(dir, "bad.pdf"))
	good := touchFile(t, filepath.Join(dir, "good.pdf"))
	configPath := writeConfig(t, dir, fmt.Sprintf(`{"files": [%q, %q]}`, bad, good))

	source := &fakeSource{failing: map[string]bool{bad: true}}
	s := pdfstitch.New(
		pdfstitch.WithLogger(discardLogger()),
		pdfstitch.WithPageSource(source),
	)

	if _, err := s.Process(context.Background(), configPath, filepath.Join(dir, "out.pdf")); err != nil {
		t.Fatalf("Process() error = %v, want per-file failure to be skipped", err)
	}
	if len(source.requested) != 2 {
		t.Errorf("requested %d files, want 2 (failure must not stop the run)", len(source.requested))
	}
}

func TestProcess_RenameUsesSuggestedName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := touchFile(t, filepath.Join(dir, "in.pdf"))
	configPath := writeConfig(t, dir, fmt.Sprintf(`{"files": [%q]}`, input))

	outPath := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(outPath, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := pdfstitch.New(
		pdfstitch.WithLogger(discardLogger()),
		pdfstitch.WithPageSource(&fakeSource{}),
		pdfstitch.WithConflictPolicy(decisionPolicy{decision: pdfstitch.Rename}),
	)

	written, err := s.Process(context.Background(), configPath, outPath)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := filepath.Join(dir, "out_1.pdf")
	if written != want {
		t.Errorf("Process() wrote to %q, want %q", written, want)
	}
	if got, _ := os.ReadFile(outPath); string(got) != "old" {
		t.Error("original output file was modified")
	}
}

func TestProcess_OverwriteKeepsOriginalName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := touchFile(t, filepath.Join(dir, "in.pdf"))
	configPath := writeConfig(t, dir, fmt.Sprintf(`{"files": [%q]}`, input))

	outPath := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(outPath, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := pdfstitch.New(
		pdfstitch.WithLogger(discardLogger()),
		pdfstitch.WithPageSource(&fakeSource{}),
		pdfstitch.WithConflictPolicy(pdfstitch.OverwritePolicy{}),
	)

	written, err := s.Process(context.Background(), configPath, outPath)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if written != outPath {
		t.Errorf("Process() wrote to %q, want %q", written, outPath)
	}
	if got, _ := os.ReadFile(outPath); string(got) == "old" {
		t.Error("existing output file was not replaced")
	}
}

func touchFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
