package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/goast"
	"github.com/shodoc/shodoc/md"
)

// Run executes the build command: the full catalog-to-pages pipeline.
func (c *BuildCmd) Run(deps *Dependencies) error {
	projects, err := deps.Catalog.Load(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog %q: %w", c.Catalog, err)
	}

	if c.SourceDir != "" {
		attachSourcePaths(projects, c.SourceDir)
	}

	if !c.DryRun {
		if err := preflightOutputDir(filepath.Dir(filepath.Clean(c.Output))); err != nil {
			return fmt.Errorf("output directory not writable: %w", err)
		}
	}

	run := &shodoc.Run{
		StartedAt: time.Now().UTC(),
		Total:     len(projects),
	}

	// Strictly sequential: one project at a time, failures skip the page
	// but never abort the run.
	for _, p := range projects {
		result := deps.Resolver.Resolve(deps.Ctx, p)

		page := &shodoc.Page{
			Title:       p.Name,
			Description: p.Description,
			Category:    p.Category,
			URL:         p.RepoURL,
		}
		switch result.Tier {
		case shodoc.TierCatalog:
			page.Body = md.CatalogBody(p)
		default:
			page.Body = result.Content
		}

		if err := deps.Store.Save(deps.Ctx, page); err != nil {
			deps.Logger.Warn("failed to save page", "project", p.Name, "error", err)
			run.Failed++
			continue
		}

		switch result.Tier {
		case shodoc.TierREADME:
			run.ReadmeCount++
		case shodoc.TierStatic:
			run.StaticCount++
		case shodoc.TierCatalog:
			run.CatalogCount++
		}
	}

	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		return fmt.Errorf("failed to commit pages: %w", err)
	}

	run.FinishedAt = time.Now().UTC()
	if err := deps.Runs.RecordRun(deps.Ctx, run); err != nil {
		deps.Logger.Warn("failed to record run", "error", err)
	}

	fmt.Fprintf(deps.Stdout, "Processed %d projects: %d readme, %d static, %d catalog, %d failed\n",
		run.Total, run.ReadmeCount, run.StaticCount, run.CatalogCount, run.Failed)

	return nil
}

// attachSourcePaths probes sourceDir/<name> for each project and records the
// entry file when one exists. Missing checkouts are expected and skipped.
func attachSourcePaths(projects []*shodoc.Project, sourceDir string) {
	for _, p := range projects {
		path, err := goast.LocateEntryFile(filepath.Join(sourceDir, p.Name))
		if err != nil {
			continue
		}
		p.SourcePath = path
	}
}

// preflightOutputDir verifies the directory exists and accepts writes before
// any network work starts.
func preflightOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".shodoc-preflight-*")
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(f.Name())
}
