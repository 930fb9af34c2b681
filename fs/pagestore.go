// Package fs provides file-based page storage with atomic update semantics.
package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shodoc/shodoc"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header every generated page carries. Field order
// is the emission order.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	URL         string `yaml:"url"`
}

// SanitizeCategory normalizes a category string for use as a directory
// name. Path separators and control characters become hyphens; interior
// spaces are kept so category directories stay readable.
func SanitizeCategory(category string) string {
	return strings.TrimSpace(sanitize(category, false))
}

// SanitizeName normalizes a project name for use as a file name. In
// addition to the category rules, whitespace becomes underscores.
func SanitizeName(name string) string {
	return sanitize(strings.TrimSpace(name), true)
}

func sanitize(s string, underscoreSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '/' || r == '\\' || r == ':' || r < 0x20:
			b.WriteRune('-')
		case underscoreSpaces && (r == ' ' || r == '\t'):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PagePath returns the relative output path for a page:
// <sanitized category>/<sanitized title>.md. The mapping is deterministic;
// the catalog guarantees title uniqueness within a category.
func PagePath(page *shodoc.Page) (string, error) {
	if page.Title == "" || page.Category == "" {
		return "", shodoc.Errorf(shodoc.EINVALID, "page requires title and category")
	}
	return filepath.Join(SanitizeCategory(page.Category), SanitizeName(page.Title)+".md"), nil
}

// FormatPage renders a page as UTF-8 text: a "---" delimited YAML front
// matter block with exactly the keys title, description, category and url,
// a blank line, then the Markdown body verbatim.
func FormatPage(page *shodoc.Page) (string, error) {
	fm, err := yaml.Marshal(frontMatter{
		Title:       page.Title,
		Description: page.Description,
		Category:    page.Category,
		URL:         page.URL,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(page.Body)
	if !strings.HasSuffix(page.Body, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure FileStore implements shodoc.PageStore at compile time.
var _ shodoc.PageStore = (*FileStore)(nil)

// FileStore implements shodoc.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit
// so a failed run never leaves a half-written site behind.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the page into the pending temporary tree.
func (s *FileStore) Save(ctx context.Context, page *shodoc.Page) error {
	relPath, err := PagePath(page)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit atomically replaces the final tree with the pending one.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the pending tree.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Ensure DryRunStore implements shodoc.PageStore at compile time.
var _ shodoc.PageStore = (*DryRunStore)(nil)

// DryRunStore logs the paths that would be written without touching disk.
type DryRunStore struct {
	Logger *slog.Logger
}

// NewDryRunStore creates a DryRunStore.
func NewDryRunStore(logger *slog.Logger) *DryRunStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DryRunStore{Logger: logger}
}

// Save logs the would-be output path.
func (s *DryRunStore) Save(ctx context.Context, page *shodoc.Page) error {
	relPath, err := PagePath(page)
	if err != nil {
		return err
	}
	s.Logger.Info("dry run: would write page", "path", relPath, "title", page.Title)
	return nil
}

// Commit is a no-op for dry runs.
func (s *DryRunStore) Commit() error { return nil }

// Abort is a no-op for dry runs.
func (s *DryRunStore) Abort() error { return nil }
