package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// pageMeta is the front matter block of a generated page.
type pageMeta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	URL         string `yaml:"url" json:"url"`
}

// parseFrontMatter extracts and decodes the leading YAML front matter block.
func parseFrontMatter(content []byte) (*pageMeta, error) {
	text := string(content)
	if !strings.HasPrefix(text, "---\n") {
		return nil, fmt.Errorf("missing front matter delimiter")
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, fmt.Errorf("unterminated front matter block")
	}

	var meta pageMeta
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &meta); err != nil {
		return nil, fmt.Errorf("invalid front matter YAML: %w", err)
	}
	return &meta, nil
}

// listPages returns the relative paths of all Markdown files under dir,
// sorted by WalkDir's lexical order.
func listPages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	return paths, err
}
