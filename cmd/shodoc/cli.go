package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/resolve"
	"github.com/shodoc/shodoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Catalog  shodoc.CatalogLoader
	Resolver *resolve.Resolver
	Store    shodoc.PageStore
	Runs     shodoc.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool   `help:"Enable debug logging"`
	DB    string `help:"Database path (defaults to $SHODOC_DB, then ~/.shodoc/shodoc.db)"`

	Build   BuildCmd   `cmd:"" help:"Generate documentation pages from a catalog"`
	Catalog CatalogCmd `cmd:"" help:"Parse a catalog and list its entries"`
	Verify  VerifyCmd  `cmd:"" help:"Validate front matter of generated pages"`
	Gather  GatherCmd  `cmd:"" help:"Export front matter of generated pages as JSON"`
	Runs    RunsCmd    `cmd:"" help:"List recorded pipeline runs"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Catalog   string  `arg:"" help:"Path to the catalog Markdown file"`
	Output    string  `short:"o" default:"site" help:"Output directory for generated pages"`
	SourceDir string  `help:"Directory of local source checkouts for static analysis"`
	SkipCache bool    `help:"Bypass the README fetch cache"`
	DryRun    bool    `help:"Log page paths without writing files"`
	Token     string  `env:"GITHUB_TOKEN" help:"GitHub API token"`
	RPS       float64 `default:"1" help:"Max requests per second per host"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	Path string `arg:"" help:"Path to the catalog Markdown file"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	Dir         string `arg:"" help:"Directory of generated pages"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent file limit"`
}

// GatherCmd is the "gather" subcommand.
type GatherCmd struct {
	Dir         string `arg:"" help:"Directory of generated pages"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent file limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `default:"10" help:"Number of runs to show"`
}
