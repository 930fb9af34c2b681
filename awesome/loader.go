// Package awesome loads a project catalog from an awesome-list style
// Markdown file: "## Category" headings followed by
// "- [Name](URL) - Description" entries.
package awesome

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/bloom"
)

// Compile-time interface verification.
var _ shodoc.CatalogLoader = (*Loader)(nil)

var (
	categoryRe = regexp.MustCompile(`^##\s+(.+)$`)
	entryRe    = regexp.MustCompile(`^-\s+\[([^\]]+)\]\(([^)]+)\)\s*(?:-\s*(.+))?$`)
)

// expectedEntries sizes the deduplication filter. Catalogs are small;
// oversizing keeps the false positive rate negligible.
const expectedEntries = 4096

// Loader parses an awesome-list Markdown file into a project catalog.
// Entries appearing before the first category heading land in
// "Uncategorized". Duplicate repository URLs are dropped.
type Loader struct {
	Path   string
	Logger *slog.Logger
}

// NewLoader creates a Loader for the given catalog file.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Path: path, Logger: logger}
}

// Load parses the catalog file and returns its projects in file order.
// A missing or unreadable file is a fatal configuration error; a file with
// no valid entries returns EINVALID.
func (l *Loader) Load(ctx context.Context) ([]*shodoc.Project, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}

	seen := bloom.NewFilter(expectedEntries, 0.0001)
	category := "Uncategorized"
	var projects []*shodoc.Project

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)

		if m := categoryRe.FindStringSubmatch(line); m != nil {
			category = strings.TrimSpace(m[1])
			continue
		}

		m := entryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		p := &shodoc.Project{
			Name:        strings.TrimSpace(m[1]),
			Category:    category,
			Description: strings.TrimSpace(m[3]),
			RepoURL:     strings.TrimSpace(m[2]),
		}

		if err := p.Validate(); err != nil {
			l.Logger.Warn("skipping invalid catalog entry",
				"line", line,
				"error", shodoc.ErrorMessage(err),
			)
			continue
		}

		if seen.Test(p.RepoURL) {
			l.Logger.Debug("skipping duplicate repository URL",
				"name", p.Name,
				"url", p.RepoURL,
			)
			continue
		}
		seen.Add(p.RepoURL)

		projects = append(projects, p)
	}

	if len(projects) == 0 {
		return nil, shodoc.Errorf(shodoc.EINVALID, "no valid project entries found in %q", l.Path)
	}

	l.Logger.Debug("catalog loaded",
		"path", l.Path,
		"projects", len(projects),
		"unique_urls", seen.EstimatedCount(),
	)

	return projects, nil
}
