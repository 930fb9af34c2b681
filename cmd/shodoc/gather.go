package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// gatherEntry is one page's exported metadata.
type gatherEntry struct {
	Path string `json:"path"`
	pageMeta
}

// Run executes the gather command, emitting a JSON array of every page's
// front matter to stdout.
func (c *GatherCmd) Run(deps *Dependencies) error {
	pages, err := listPages(c.Dir)
	if err != nil {
		return fmt.Errorf("failed to walk %q: %w", c.Dir, err)
	}

	var mu sync.Mutex
	entries := make([]gatherEntry, 0, len(pages))

	g := new(errgroup.Group)
	g.SetLimit(c.Concurrency)

	for _, rel := range pages {
		g.Go(func() error {
			content, err := os.ReadFile(filepath.Join(c.Dir, rel))
			if err != nil {
				return err
			}
			meta, err := parseFrontMatter(content)
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
			mu.Lock()
			entries = append(entries, gatherEntry{Path: filepath.ToSlash(rel), pageMeta: *meta})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Deterministic output regardless of goroutine completion order.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
