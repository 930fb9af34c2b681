package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Run executes the verify command. Every page must carry front matter with
// non-empty title, category and url keys.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	pages, err := listPages(c.Dir)
	if err != nil {
		return fmt.Errorf("failed to walk %q: %w", c.Dir, err)
	}

	var mu sync.Mutex
	var problems []string

	g := new(errgroup.Group)
	g.SetLimit(c.Concurrency)

	for _, rel := range pages {
		g.Go(func() error {
			if msg := verifyPage(filepath.Join(c.Dir, rel)); msg != "" {
				mu.Lock()
				problems = append(problems, fmt.Sprintf("%s: %s", rel, msg))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		for _, p := range problems {
			fmt.Fprintln(deps.Stderr, p)
		}
		return fmt.Errorf("%d of %d pages have invalid front matter", len(problems), len(pages))
	}

	fmt.Fprintf(deps.Stdout, "%d pages verified\n", len(pages))
	return nil
}

// verifyPage returns a problem description, or empty when the page is valid.
func verifyPage(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return err.Error()
	}

	meta, err := parseFrontMatter(content)
	if err != nil {
		return err.Error()
	}

	switch {
	case meta.Title == "":
		return "missing title"
	case meta.Category == "":
		return "missing category"
	case meta.URL == "":
		return "missing url"
	}
	return ""
}
