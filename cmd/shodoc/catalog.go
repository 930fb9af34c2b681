package main

import (
	"fmt"

	"github.com/shodoc/shodoc"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	projects, err := deps.Catalog.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shodoc.ErrorMessage(err))
		return err
	}

	for _, p := range projects {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.Category, p.Name, p.RepoURL)
	}
	fmt.Fprintf(deps.Stdout, "%d projects\n", len(projects))

	return nil
}
